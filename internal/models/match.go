package models

type MatchResult struct {
	Disorder *Disorder
	Score    int
	Total    int
	Matched  []string
}
