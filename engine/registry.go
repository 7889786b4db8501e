package engine

// Tags lists the recognized engine tags, in CLI prompt order, for
// validation messages and interactive menus.
var Tags = []string{"brla", "minerva", "athena", "bravo"}

// ValidTag reports whether tag names a known engine.
func ValidTag(tag string) bool {
	for _, t := range Tags {
		if t == tag {
			return true
		}
	}
	return false
}
