package interpreter

import "testing"

func TestEvaluate(t *testing.T) {
	env := NewEnvironment()
	env.Set("X", 7)
	env.Set("neg", -3)

	tests := []struct {
		token    string
		expected int
	}{
		{"5", 5},
		{"-5", -5},
		{"+5", 5},
		{"0", 0},
		{"X", 7},
		{"neg", -3},
		{"x", 0},
		{"UNDEFINED", 0},
		{"5a", 0},
	}
	for _, tt := range tests {
		if got := Evaluate(tt.token, env); got != tt.expected {
			t.Errorf("Evaluate(%q) = %d, want %d", tt.token, got, tt.expected)
		}
	}
}

func TestEnvironmentReset(t *testing.T) {
	env := NewEnvironment()
	env.Set("A", 1)
	env.Set("A", 2)
	if v, _ := env.Get("A"); v != 2 {
		t.Fatalf("A = %d, want 2", v)
	}
	if env.Len() != 1 {
		t.Fatalf("Len = %d, want 1", env.Len())
	}
	env.Reset()
	if _, ok := env.Get("A"); ok {
		t.Fatal("A still defined after Reset")
	}
}
