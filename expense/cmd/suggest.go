package cmd

import (
	"math"
	"strings"

	"github.com/howeyc/expense"
	"github.com/jbrukh/bayesian"
)

// trainClassifier builds a description-words to category classifier from the
// existing ledger. Returns nil when the ledger doesn't span at least two
// categories, in which case prediction falls back to "Other".
func trainClassifier(records []*expense.Record) *bayesian.Classifier {
	uniqueCategories := make(map[string]bool)
	for _, rec := range records {
		if rec.Description != "" {
			uniqueCategories[rec.Category] = true
		}
	}
	if len(uniqueCategories) < 2 {
		return nil
	}

	classes := make([]bayesian.Class, 0, len(uniqueCategories))
	for name := range uniqueCategories {
		classes = append(classes, bayesian.Class(name))
	}

	classifier := bayesian.NewClassifier(classes...)
	for _, rec := range records {
		if rec.Description == "" {
			continue
		}
		classifier.Learn(descriptionWords(rec.Description), bayesian.Class(rec.Category))
	}

	return classifier
}

// predictCategory classifies description words into a category. Only a high
// confidence match is returned; everything else is "Other".
func predictCategory(classifier *bayesian.Classifier, inputWords []string) string {
	if classifier == nil || len(inputWords) == 0 {
		return "Other"
	}

	// Find the highest and second highest scores
	highScore1 := math.Inf(-1)
	highScore2 := math.Inf(-1)
	matchIdx := 0
	scores, _, _ := classifier.LogScores(inputWords)
	for j, score := range scores {
		if score > highScore1 {
			highScore2 = highScore1
			highScore1 = score
			matchIdx = j
		}
	}
	// If the difference between the highest and second highest scores is greater than 10
	// then it indicates that highscore is a high confidence match
	if highScore1-highScore2 > 10 {
		return string(classifier.Classes[matchIdx])
	}
	return "Other"
}

func descriptionWords(description string) []string {
	return strings.Fields(strings.ToLower(description))
}
