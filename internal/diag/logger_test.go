package diag

import "testing"

func TestNopLoggerWithReturnsUsableLogger(t *testing.T) {
	l := NewNop()
	child := l.With(String("residue", "SER")).Named("sampler")
	child.Info("test", Int("n", 1), Err(nil))
}

func TestNewBuildsJSONLogger(t *testing.T) {
	l, err := New(Config{Level: "debug", Format: "json"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("built ok")
}
