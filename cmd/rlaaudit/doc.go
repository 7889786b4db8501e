// Command rlaaudit drives a risk-limiting audit interactively, round by
// round, or replays a fixed round schedule in bulk mode against a
// contest described by a JSON file.
package main
