package contest

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		ballots int64
		tallies map[string]int64
		winners []string
		typ     Type
		wantErr bool
	}{
		{
			name:    "plurality_700_300",
			ballots: 1000,
			tallies: map[string]int64{"A": 700, "B": 300},
			winners: []string{"A"},
			typ:     Plurality,
		},
		{
			name:    "plurality_tie_rejected",
			ballots: 1000,
			tallies: map[string]int64{"A": 500, "B": 500},
			winners: []string{"A"},
			typ:     Plurality,
			wantErr: true,
		},
		{
			name:    "majority_requires_half",
			ballots: 1000,
			tallies: map[string]int64{"A": 500, "B": 499},
			winners: []string{"A"},
			typ:     Majority,
			wantErr: true,
		},
		{
			name:    "majority_ok",
			ballots: 1000,
			tallies: map[string]int64{"A": 501, "B": 499},
			winners: []string{"A"},
			typ:     Majority,
		},
		{
			name:    "winner_not_in_tallies",
			ballots: 1000,
			tallies: map[string]int64{"B": 300},
			winners: []string{"A"},
			typ:     Plurality,
			wantErr: true,
		},
		{
			name:    "negative_tally",
			ballots: 1000,
			tallies: map[string]int64{"A": 700, "B": -1},
			winners: []string{"A"},
			typ:     Plurality,
			wantErr: true,
		},
		{
			name:    "tally_sum_exceeds_ballots",
			ballots: 100,
			tallies: map[string]int64{"A": 70, "B": 40},
			winners: []string{"A"},
			typ:     Plurality,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.ballots, tt.tallies, tt.winners, tt.typ)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("New() expected error, got contest %+v", c)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			if c == nil {
				t.Fatal("New() returned nil contest with nil error")
			}
		})
	}
}

func TestPairwise(t *testing.T) {
	c, err := New(1000, map[string]int64{"A": 700, "B": 300}, []string{"A"}, Plurality)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	vw, vl, pool, err := c.Pairwise("A", "B")
	if err != nil {
		t.Fatalf("Pairwise() unexpected error: %v", err)
	}
	if vw != 700 || vl != 300 || pool != 1000 {
		t.Fatalf("Pairwise() = (%d, %d, %d), want (700, 300, 1000)", vw, vl, pool)
	}
}

func TestNamesSorted(t *testing.T) {
	c, err := New(1000, map[string]int64{"C": 100, "A": 700, "B": 200}, []string{"A"}, Plurality)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	got := c.Names()
	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}

func TestPairwiseMajorityUndervotes(t *testing.T) {
	c, err := New(1000, map[string]int64{"A": 600, "B": 300}, []string{"A"}, Majority)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	// loser pool = B (300) + undervotes (1000-900=100) = 400
	vw, vl, pool, err := c.Pairwise("A", "B")
	if err != nil {
		t.Fatalf("Pairwise() unexpected error: %v", err)
	}
	if vw != 600 || vl != 400 || pool != 1000 {
		t.Fatalf("Pairwise() = (%d, %d, %d), want (600, 400, 1000)", vw, vl, pool)
	}
}
