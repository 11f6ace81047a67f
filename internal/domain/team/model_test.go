package team

import "testing"

func TestTeamValidate(t *testing.T) {
	t.Parallel()

	if err := (Team{Name: "Leeds Gryphons", League: "BUCS"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Team{Name: " A "}).Validate(); err == nil {
		t.Fatalf("expected error for short name")
	}
	long := make([]byte, 121)
	for i := range long {
		long[i] = 'x'
	}
	if err := (Team{Name: "Valid", League: string(long)}).Validate(); err == nil {
		t.Fatalf("expected error for long league")
	}
}

func TestTeamApply(t *testing.T) {
	t.Parallel()

	name := "  Renamed FC "
	got := Team{ID: 1, Name: "Old", League: "BUCS"}.Apply(Patch{Name: &name})
	if got.Name != "Renamed FC" || got.League != "BUCS" || got.ID != 1 {
		t.Fatalf("unexpected patched team: %+v", got)
	}
}
