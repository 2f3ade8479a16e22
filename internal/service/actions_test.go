package service

import "testing"

func TestEncodeDecodeActionID(t *testing.T) {
	t.Parallel()

	id := EncodeActionID(ActionJoin, "abc-123")
	if id != "join_abc-123" {
		t.Errorf("unexpected encoding %q", id)
	}

	action, target, ok := DecodeActionID(id)
	if !ok || action != ActionJoin || target != "abc-123" {
		t.Errorf("decode = (%q, %q, %v)", action, target, ok)
	}
}

func TestDecodeActionID_TargetWithSeparator(t *testing.T) {
	t.Parallel()

	action, target, ok := DecodeActionID("setcount_some_mode")
	if !ok || action != ActionSetCount || target != "some_mode" {
		t.Errorf("decode = (%q, %q, %v)", action, target, ok)
	}
}

func TestDecodeActionID_Malformed(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"", "join", "join_", "_abc"} {
		if _, _, ok := DecodeActionID(id); ok {
			t.Errorf("expected decode failure for %q", id)
		}
	}
}
