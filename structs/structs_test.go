package structs

import "testing"

func TestPriorityNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Priority
		want Priority
	}{
		{"high kept", PriorityHigh, PriorityHigh},
		{"medium kept", PriorityMedium, PriorityMedium},
		{"low kept", PriorityLow, PriorityLow},
		{"unknown coerced", Priority("Urgent"), PriorityMedium},
		{"empty coerced", Priority(""), PriorityMedium},
		{"case sensitive", Priority("high"), PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityHigh.Rank() >= PriorityMedium.Rank() {
		t.Errorf("High should rank before Medium")
	}
	if PriorityMedium.Rank() >= PriorityLow.Rank() {
		t.Errorf("Medium should rank before Low")
	}
	if got := Priority("Urgent").Rank(); got != PriorityMedium.Rank() {
		t.Errorf("unknown priority Rank() = %d, want %d", got, PriorityMedium.Rank())
	}
}

func TestStatusToggle(t *testing.T) {
	if got := StatusOpen.Toggle(); got != StatusDone {
		t.Errorf("Toggle() = %v, want %v", got, StatusDone)
	}
	if got := StatusDone.Toggle(); got != StatusOpen {
		t.Errorf("Toggle() = %v, want %v", got, StatusOpen)
	}
	// Toggle is its own inverse.
	if got := StatusOpen.Toggle().Toggle(); got != StatusOpen {
		t.Errorf("Toggle()Toggle() = %v, want %v", got, StatusOpen)
	}
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := &CreateTodoRequest{Title: "buy milk", Priority: "High"}
		if msgs := ValidateStruct(req); len(msgs) != 0 {
			t.Errorf("ValidateStruct() = %v, want no errors", msgs)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		req := &CreateTodoRequest{Description: "no title"}
		msgs := ValidateStruct(req)
		if _, ok := msgs["title"]; !ok {
			t.Errorf("ValidateStruct() = %v, want error for title", msgs)
		}
	})

	t.Run("arbitrary priority allowed", func(t *testing.T) {
		// Out-of-range priorities are coerced by the store, not
		// rejected here.
		req := &CreateTodoRequest{Title: "x", Priority: "Urgent"}
		if msgs := ValidateStruct(req); len(msgs) != 0 {
			t.Errorf("ValidateStruct() = %v, want no errors", msgs)
		}
	})
}
