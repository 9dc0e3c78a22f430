package dataset

import (
	"math/rand"

	"github.com/smsguard/spam-classifier/pkg/model"
)

// StratifiedSplit partitions messages into train and test sets, sampling
// the test fraction independently within each label so both sets keep the
// corpus's ham/spam ratio. The same seed always produces the same
// partition, which is what makes training runs reproducible.
func StratifiedSplit(messages []model.TrainingMessage, testFraction float64, seed int64) (train, test []model.TrainingMessage) {
	if testFraction <= 0 {
		train = append(train, messages...)
		return train, nil
	}
	if testFraction >= 1 {
		test = append(test, messages...)
		return nil, test
	}

	byLabel := make(map[model.Label][]int)
	for i, msg := range messages {
		byLabel[msg.Label] = append(byLabel[msg.Label], i)
	}

	rng := rand.New(rand.NewSource(seed))
	inTest := make(map[int]bool)

	// Iterate labels in a fixed order so the draw sequence is stable
	for _, label := range []model.Label{model.Ham, model.Spam} {
		indexes := byLabel[label]
		if len(indexes) == 0 {
			continue
		}

		shuffled := make([]int, len(indexes))
		copy(shuffled, indexes)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		testCount := int(float64(len(shuffled)) * testFraction)
		for _, idx := range shuffled[:testCount] {
			inTest[idx] = true
		}
	}

	for i, msg := range messages {
		if inTest[i] {
			test = append(test, msg)
		} else {
			train = append(train, msg)
		}
	}

	return train, test
}
