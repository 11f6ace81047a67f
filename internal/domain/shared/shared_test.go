package shared

import "testing"

func TestPage_NormalizeAndOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         Page
		wantLimit  int
		wantOffset int
	}{
		{name: "zero value uses defaults", in: Page{}, wantLimit: DefaultPageLimit, wantOffset: 0},
		{name: "third page", in: Page{Number: 3, Limit: 20}, wantLimit: 20, wantOffset: 40},
		{name: "limit clamped", in: Page{Number: 2, Limit: 500}, wantLimit: MaxPageLimit, wantOffset: MaxPageLimit},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.in.Normalize().Limit; got != tc.wantLimit {
				t.Fatalf("limit: got %d want %d", got, tc.wantLimit)
			}
			if got := tc.in.Offset(); got != tc.wantOffset {
				t.Fatalf("offset: got %d want %d", got, tc.wantOffset)
			}
		})
	}
}
