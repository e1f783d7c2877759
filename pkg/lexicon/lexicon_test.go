package lexicon

import (
	"reflect"
	"testing"
)

func TestThemeMatchWordBoundary(t *testing.T) {
	pets := themeByName(t, Pets)

	// "catalog" must not count as "cat"
	if got := pets.Match("She maintains a catalog of precedents."); len(got) != 0 {
		t.Errorf("Expected no matches in catalog text, got %v", got)
	}

	if got := pets.Match("She has a cat and a golden retriever."); !reflect.DeepEqual(got, []string{"cat", "golden retriever"}) {
		t.Errorf("Expected [cat, golden retriever], got %v", got)
	}
}

func TestThemeMatchCaseInsensitiveAndSorted(t *testing.T) {
	hobbies := themeByName(t, Hobbies)

	got := hobbies.Match("He enjoys Hiking, GOLF and cooking on weekends.")
	want := []string{"cooking", "golf", "hiking"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestThemeMatchPhrases(t *testing.T) {
	community := themeByName(t, Community)

	got := community.Match("He serves as a board member and handles pro bono matters.")
	want := []string{"board member", "pro bono"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestThemesCoverAllCategories(t *testing.T) {
	want := []string{Hobbies, Pets, Family, Community, Languages, Awards, BarCourts}
	if !reflect.DeepEqual(Names(), want) {
		t.Errorf("Expected theme order %v, got %v", want, Names())
	}
	for _, theme := range Themes() {
		if len(theme.Vocabulary) == 0 {
			t.Errorf("Theme %s has an empty vocabulary", theme.Name)
		}
	}
}

func themeByName(t *testing.T, name string) Theme {
	t.Helper()
	for _, theme := range Themes() {
		if theme.Name == name {
			return theme
		}
	}
	t.Fatalf("Theme %s not found", name)
	return Theme{}
}
