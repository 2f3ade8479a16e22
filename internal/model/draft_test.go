package model

import "testing"

func TestParsePlayerCount_Any(t *testing.T) {
	t.Parallel()

	c, err := ParsePlayerCount("any")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Any {
		t.Errorf("expected any count, got %+v", c)
	}
	if c.String() != "Any" {
		t.Errorf("expected Any render, got %q", c.String())
	}
}

func TestParsePlayerCount_Exact(t *testing.T) {
	t.Parallel()

	c, err := ParsePlayerCount("4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Any || c.N != 4 {
		t.Errorf("expected exact 4, got %+v", c)
	}
	if c.String() != "+4" {
		t.Errorf("expected +4 render, got %q", c.String())
	}
}

func TestParsePlayerCount_Invalid(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"0", "10", "-1", "abc", ""} {
		if _, err := ParsePlayerCount(value); err == nil {
			t.Errorf("expected error for %q", value)
		}
	}
}

func TestMode_Valid(t *testing.T) {
	t.Parallel()

	for _, m := range Modes {
		if !m.Valid() {
			t.Errorf("expected %q to be valid", m)
		}
	}
	if Mode("Turbo").Valid() {
		t.Error("expected unknown mode to be invalid")
	}
}

func TestRank_Valid(t *testing.T) {
	t.Parallel()

	if !RankImmortal.Valid() {
		t.Error("expected Immortal to be valid")
	}
	if Rank("Uncalibrated").Valid() {
		t.Error("expected unknown rank to be invalid")
	}
}

func TestDraft_EffectiveRanks(t *testing.T) {
	t.Parallel()

	d := NewDraft("user-1", ModeRanked)
	ranks := d.EffectiveRanks()
	if len(ranks) != 1 || ranks[0] != RankAny {
		t.Errorf("expected empty selection to collapse to Any, got %v", ranks)
	}

	d.Ranks = []Rank{RankLegend, RankAncient}
	ranks = d.EffectiveRanks()
	if len(ranks) != 2 || ranks[0] != RankLegend {
		t.Errorf("expected explicit selection preserved, got %v", ranks)
	}
}

func TestParty_HasMember(t *testing.T) {
	t.Parallel()

	p := &Party{LeaderID: "leader", MemberIDs: []string{"a", "b"}}
	if !p.HasMember("a") {
		t.Error("expected a to be a member")
	}
	if p.HasMember("leader") {
		t.Error("leader is implicit, never a member entry")
	}
	if p.HasMember("c") {
		t.Error("expected c to not be a member")
	}
}
