package duo

import "testing"

func TestTag_Strings(t *testing.T) {
	t.Parallel()

	cases := map[Tag]string{
		TagNone:  "None",
		TagSome:  "Some",
		TagErr:   "Err",
		TagOk:    "Ok",
		TagLeft:  "Left",
		TagRight: "Right",
	}
	for tag, want := range cases {
		if got := tag.String(); got != want {
			t.Fatalf("expected %q, got: %q", want, got)
		}
	}

	if got := Tag(99).String(); got != "Tag(99)" {
		t.Fatalf("expected Tag(99), got: %q", got)
	}
}

func TestTag_DiscriminatesAcrossContainers(t *testing.T) {
	t.Parallel()

	containers := []Tagged{
		None[int](),
		Some(1),
		Err[int, error](errParse),
		Ok[int, error](1),
		Left[string, int]("l"),
		Right[string, int](2),
	}
	want := []Tag{TagNone, TagSome, TagErr, TagOk, TagLeft, TagRight}

	for i, c := range containers {
		if got := c.Tag(); got != want[i] {
			t.Fatalf("container %d: expected %v, got: %v", i, want[i], got)
		}
	}
}
