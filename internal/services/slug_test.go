package services

import "testing"

func TestSlugifyName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{name: "Major Depressive Disorder", want: "major-depressive-disorder"},
		{name: "Post-Traumatic Stress Disorder (PTSD)", want: "post-traumatic-stress-disorder"},
		{name: "Obsessive–Compulsive Disorder (OCD) ", want: "obsessive-compulsive-disorder"},
		{name: "  --Bipolar I & II--  ", want: "bipolar-i-ii"},
		{name: "Ménière Disease", want: "meniere-disease"},
		{name: "Café Anxiety", want: "cafe-anxiety"},
		{name: "ﬁbromyalgia", want: "fibromyalgia"},
		{name: "(only parens)", want: ""},
		{name: "", want: ""},
	}

	for _, testCase := range tests {
		if got := SlugifyName(testCase.name); got != testCase.want {
			t.Fatalf("SlugifyName(%q) = %q, want %q", testCase.name, got, testCase.want)
		}
	}
}
