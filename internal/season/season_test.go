package season

import (
	"strings"
	"testing"

	"github.com/aayushbajaj/haikumator/internal/poem"
	"github.com/google/go-cmp/cmp"
)

func TestDefaultTableLoaded(t *testing.T) {
	table := DefaultTable()

	var names []string
	for _, c := range table {
		names = append(names, c.Season)
		if len(c.Groups) != 3 {
			t.Errorf("season %q has %d groups, want 3", c.Season, len(c.Groups))
		}
	}
	want := []string{"spring", "summer", "autumn", "winter"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("season order mismatch (-want +got):\n%s", diff)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		poem   poem.Poem
		season string
		hits   int
	}{
		{"spring", poem.New("Cherry blossom falls,", "a frog in the rain.", ""), "spring", 4},
		{"winter", poem.New("Snow on the pine", "a cold wolf howls", ""), "winter", 4},
		{"none", poem.New("An old silent pond", "", ""), "", 0},
		{"trailing punctuation stripped", poem.New("heat!", "", ""), "summer", 1},
		{"leading punctuation kept", poem.New("(heat)", "", ""), "", 0},
		{"case folded", poem.New("DEER", "", ""), "autumn", 2},
	}

	d := NewDetector(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := d.Detect(tt.poem)
			if res.Season != tt.season {
				t.Errorf("Season = %q, want %q", res.Season, tt.season)
			}
			if len(res.Hits) != tt.hits {
				t.Errorf("len(Hits) = %d, want %d (%v)", len(res.Hits), tt.hits, res.Hits)
			}
		})
	}
}

func TestDetectCountsEveryMatch(t *testing.T) {
	// "breeze" is spring and autumn weather; "owl" is autumn and winter.
	res := NewDetector(nil).Detect(poem.New("breeze owl", "", ""))

	want := []Hit{
		{Word: "breeze", Season: "spring", Group: "weather"},
		{Word: "breeze", Season: "autumn", Group: "weather"},
		{Word: "owl", Season: "autumn", Group: "animals"},
		{Word: "owl", Season: "winter", Group: "animals"},
	}
	if diff := cmp.Diff(want, res.Hits); diff != "" {
		t.Errorf("Hits mismatch (-want +got):\n%s", diff)
	}
	if res.Season != "autumn" {
		t.Errorf("Season = %q, want autumn", res.Season)
	}
}

func TestDetectTieGoesToFirstSeason(t *testing.T) {
	// "drizzle" appears in spring and autumn weather.
	res := NewDetector(nil).Detect(poem.New("drizzle", "", ""))
	if res.Season != "spring" {
		t.Errorf("Season = %q, want spring", res.Season)
	}

	counts := map[string]int{}
	for _, c := range res.Counts {
		counts[c.Season] = c.Hits
	}
	if counts["spring"] != 1 || counts["autumn"] != 1 {
		t.Errorf("Counts = %v", res.Counts)
	}
}

func TestCustomTable(t *testing.T) {
	table, err := ParseTable(strings.NewReader(`
- season: monsoon
  groups:
    - name: weather
      words: [downpour, flood]
- season: dry
  groups:
    - name: weather
      words: [dust]
`))
	if err != nil {
		t.Fatalf("ParseTable failed: %v", err)
	}

	res := NewDetector(table).Detect(poem.New("dust and flood,", "downpour", ""))
	if res.Season != "monsoon" {
		t.Errorf("Season = %q, want monsoon", res.Season)
	}
}

func TestParseTableRejectsUnnamed(t *testing.T) {
	if _, err := ParseTable(strings.NewReader("- groups: []\n")); err == nil {
		t.Error("expected error for unnamed season")
	}
}

func TestReport(t *testing.T) {
	res := NewDetector(nil).Detect(poem.New("Rain on the frog.", "", ""))

	want := "Detected Season: Spring\n\nSeasonal Keywords Found:\n- 'rain' (weather, spring)\n- 'frog' (animals, spring)"
	if got := res.Report(); got != want {
		t.Errorf("Report() =\n%s\nwant\n%s", got, want)
	}

	empty := NewDetector(nil).Detect(poem.New("", "", ""))
	if got := empty.Report(); got != "No seasonal references detected." {
		t.Errorf("Report() = %q", got)
	}
}
