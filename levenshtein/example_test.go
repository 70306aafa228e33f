package levenshtein_test

import (
	"fmt"

	"github.com/katalvlaran/lvlstr/levenshtein"
)

// ExampleDistance shows the classic textbook pair: three single-element
// edits turn "kitten" into "sitting".
func ExampleDistance() {
	d, err := levenshtein.Distance("kitten", "sitting")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d)
	// Output:
	// 3
}

// ExampleDistance_cutoff demonstrates the early-exit contract: the true
// distance is 3, but with cutoff 1 the engine stops as soon as it can
// prove the bound is exceeded and reports cutoff+1.
func ExampleDistance_cutoff() {
	d, err := levenshtein.Distance("saturday", "sunday", levenshtein.WithCutoff(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d)
	// Output:
	// 2
}

// ExampleSimilarity normalizes the distance by the longer input:
// 1 - 3/7 for the kitten/sitting pair.
func ExampleSimilarity() {
	s, err := levenshtein.Similarity("kitten", "sitting")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.4f\n", s)
	// Output:
	// 0.5714
}

// ExampleMatch ranks a small word list against "kitten". kitchen and
// smitten tie at 1 - 2/7 and the tie resolves lexicographically;
// sitting (score 4/7) falls below the 0.6 floor.
func ExampleMatch() {
	top, err := levenshtein.Match("kitten",
		[]string{"mitten", "kitchen", "smitten", "sitting"},
		levenshtein.WithScoreRange(0.6, 1),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, m := range top {
		fmt.Printf("%s %.4f\n", m.Candidate, m.Score)
	}
	// Output:
	// mitten 0.8333
	// kitchen 0.7143
	// smitten 0.7143
}
