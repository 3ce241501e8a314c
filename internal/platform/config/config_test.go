package config

import (
	"testing"
	"time"

	kit "bazaar/internal/platform/testkit"
)

func TestPrefixChaining(t *testing.T) {
	t.Setenv("CORE_API_HTTP_PORT", "4000")

	c := New().Prefix("CORE_").Prefix("API_")
	if got := c.MustString("HTTP_PORT"); got != "4000" {
		t.Fatalf("MustString = %q", got)
	}
}

func TestMustStringPanicsWhenMissing(t *testing.T) {
	c := New().Prefix("TEST_CFG_")
	kit.MustPanic(t, func() { c.MustString("NOPE") })

	t.Setenv("TEST_CFG_BLANK", "   ")
	kit.MustPanic(t, func() { c.MustString("BLANK") })
}

func TestMustInt(t *testing.T) {
	t.Setenv("TEST_CFG_N", "42")
	c := New().Prefix("TEST_CFG_")
	if got := c.MustInt("N"); got != 42 {
		t.Fatalf("MustInt = %d", got)
	}

	t.Setenv("TEST_CFG_N", "forty-two")
	kit.MustPanic(t, func() { c.MustInt("N") })
	kit.MustPanic(t, func() { c.MustInt("MISSING") })
}

func TestRequire(t *testing.T) {
	t.Setenv("TEST_CFG_A", "x")
	t.Setenv("TEST_CFG_B", "y")
	c := New().Prefix("TEST_CFG_")

	kit.MustNotPanic(t, func() { c.Require("A", "B") })
	kit.MustPanic(t, func() { c.Require("A", "B", "C") })
}

func TestMayStringFallsBack(t *testing.T) {
	c := New().Prefix("TEST_CFG_")
	if got := c.MayString("ABSENT", "def"); got != "def" {
		t.Fatalf("MayString = %q", got)
	}

	t.Setenv("TEST_CFG_NAME", " bazaar ")
	if got := c.MayString("NAME", "def"); got != "bazaar" {
		t.Fatalf("MayString = %q", got)
	}
}

func TestMayIntAndBool(t *testing.T) {
	c := New().Prefix("TEST_CFG_")

	if got := c.MayInt("ABSENT", 7); got != 7 {
		t.Fatalf("MayInt = %d", got)
	}
	t.Setenv("TEST_CFG_N", "junk")
	if got := c.MayInt("N", 7); got != 7 {
		t.Fatalf("MayInt invalid = %d", got)
	}
	t.Setenv("TEST_CFG_N", "12")
	if got := c.MayInt("N", 7); got != 12 {
		t.Fatalf("MayInt = %d", got)
	}

	if got := c.MayBool("ABSENT", true); !got {
		t.Fatal("MayBool default lost")
	}
	t.Setenv("TEST_CFG_FLAG", "false")
	if got := c.MayBool("FLAG", true); got {
		t.Fatal("MayBool should honor explicit false")
	}
	t.Setenv("TEST_CFG_FLAG", "yep")
	if got := c.MayBool("FLAG", true); !got {
		t.Fatal("MayBool invalid should fall back")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("TEST_CFG_")

	if got := c.MayDuration("ABSENT", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration = %v", got)
	}
	t.Setenv("TEST_CFG_EVERY", "250ms")
	if got := c.MayDuration("EVERY", time.Minute); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	t.Setenv("TEST_CFG_EVERY", "soon")
	if got := c.MayDuration("EVERY", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration invalid = %v", got)
	}
}

func TestMayStrings(t *testing.T) {
	c := New().Prefix("TEST_CFG_")

	def := []string{"*"}
	if got := c.MayStrings("ABSENT", def); len(got) != 1 || got[0] != "*" {
		t.Fatalf("MayStrings = %v", got)
	}

	t.Setenv("TEST_CFG_ORIGINS", " https://a.example , https://b.example ,, ")
	got := c.MayStrings("ORIGINS", def)
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("MayStrings = %v", got)
	}

	t.Setenv("TEST_CFG_ORIGINS", " , ,")
	if got := c.MayStrings("ORIGINS", def); len(got) != 1 || got[0] != "*" {
		t.Fatalf("MayStrings all-blank = %v", got)
	}
}

func TestMayPort(t *testing.T) {
	c := New().Prefix("TEST_CFG_")

	if got := c.MayPort("ABSENT", ":4000"); got != ":4000" {
		t.Fatalf("MayPort = %q", got)
	}
	t.Setenv("TEST_CFG_PORT", "8080")
	if got := c.MayPort("PORT", ":4000"); got != ":8080" {
		t.Fatalf("MayPort = %q", got)
	}
	t.Setenv("TEST_CFG_PORT", ":9090")
	if got := c.MayPort("PORT", ":4000"); got != ":9090" {
		t.Fatalf("MayPort = %q", got)
	}
	for _, bad := range []string{"0", "70000", "http"} {
		t.Setenv("TEST_CFG_PORT", bad)
		if got := c.MayPort("PORT", ":4000"); got != ":4000" {
			t.Fatalf("MayPort(%q) = %q, want default", bad, got)
		}
	}
}
