package game

import "testing"

func TestKeyboardMarkAndGet(t *testing.T) {
	kb := NewKeyboard(LastWrite)

	if _, ok := kb.Get('a'); ok {
		t.Error("fresh keyboard reports 'a' as marked")
	}
	if len(kb.State()) != 0 {
		t.Errorf("fresh keyboard State() has %d entries, want 0", len(kb.State()))
	}

	kb.Mark('a', MarkMisplaced)
	kb.Mark('!', MarkCorrect)
	kb.Mark('A', MarkCorrect)

	if m, ok := kb.Get('a'); !ok || m != MarkMisplaced {
		t.Errorf("Get('a') = %v, %v; want misplaced, true", m, ok)
	}
	if got := len(kb.State()); got != 1 {
		t.Errorf("State() has %d entries, want 1", got)
	}
}

func TestKeyboardPolicies(t *testing.T) {
	tests := []struct {
		policy MergePolicy
		want   Mark
	}{
		{LastWrite, MarkIncorrect},
		{Monotonic, MarkCorrect},
	}

	for _, tt := range tests {
		kb := NewKeyboard(tt.policy)
		kb.Mark('l', MarkCorrect)
		kb.Mark('l', MarkIncorrect)
		if got, _ := kb.Get('l'); got != tt.want {
			t.Errorf("%s: Get('l') = %v, want %v", tt.policy, got, tt.want)
		}

		kb.Mark('o', MarkIncorrect)
		kb.Mark('o', MarkMisplaced)
		if got, _ := kb.Get('o'); got != MarkMisplaced {
			t.Errorf("%s: upgrade Get('o') = %v, want misplaced", tt.policy, got)
		}
	}
}

func TestKeyboardMarkGuessDuplicates(t *testing.T) {
	// allot/lolly: the last 'l' is incorrect and overwrites the earlier marks.
	marks := Evaluate("allot", "lolly")

	kb := NewKeyboard(LastWrite)
	kb.MarkGuess("lolly", marks)
	if got, _ := kb.Get('l'); got != MarkIncorrect {
		t.Errorf("LastWrite Get('l') = %v, want incorrect", got)
	}

	kb = NewKeyboard(Monotonic)
	kb.MarkGuess("lolly", marks)
	if got, _ := kb.Get('l'); got != MarkCorrect {
		t.Errorf("Monotonic Get('l') = %v, want correct", got)
	}
	if got, _ := kb.Get('o'); got != MarkMisplaced {
		t.Errorf("Monotonic Get('o') = %v, want misplaced", got)
	}
}

func TestKeyboardRows(t *testing.T) {
	kb := NewKeyboard(LastWrite)
	kb.Mark('q', MarkCorrect)

	rows := kb.Rows()
	if len(rows) != 3 {
		t.Fatalf("Rows() returned %d rows, want 3", len(rows))
	}
	lengths := []int{10, 9, 7}
	for i, row := range rows {
		if len(row) != lengths[i] {
			t.Errorf("row %d has %d keys, want %d", i, len(row), lengths[i])
		}
	}
	if first := rows[0][0]; first.Letter != 'q' || !first.Marked || first.Mark != MarkCorrect {
		t.Errorf("rows[0][0] = %+v, want marked correct 'q'", first)
	}
	if last := rows[2][6]; last.Letter != 'm' || last.Marked {
		t.Errorf("rows[2][6] = %+v, want unmarked 'm'", last)
	}
}

func TestParseMergePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    MergePolicy
		wantErr bool
	}{
		{"", LastWrite, false},
		{"last-write", LastWrite, false},
		{"Monotonic", Monotonic, false},
		{"highest", LastWrite, true},
	}

	for _, tt := range tests {
		got, err := ParseMergePolicy(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMergePolicy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseMergePolicy(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
