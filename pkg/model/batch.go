package model

import (
	"sync"
	"sync/atomic"
)

// BatchResults summarizes a batch classification run
type BatchResults struct {
	Total   int
	Ham     int
	Spam    int
	Unknown int
}

// ClassifyBatch classifies texts concurrently against the read-only model
// and returns predictions in input order. Each classification is
// independent, so the worker pool shares nothing but the immutable model.
func (c *Classifier) ClassifyBatch(texts []string, workers int) ([]Prediction, *BatchResults) {
	predictions := make([]Prediction, len(texts))

	if workers < 1 {
		workers = 1
	}
	if workers > len(texts) {
		workers = len(texts)
	}

	type job struct {
		index int
		text  string
	}

	jobs := make(chan job, len(texts))
	var hamCount, spamCount, unknownCount int32

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				pred := c.Classify(j.text)
				predictions[j.index] = pred

				switch pred.Label {
				case Ham:
					atomic.AddInt32(&hamCount, 1)
				case Spam:
					atomic.AddInt32(&spamCount, 1)
				default:
					atomic.AddInt32(&unknownCount, 1)
				}
			}
		}()
	}

	for i, text := range texts {
		jobs <- job{index: i, text: text}
	}
	close(jobs)
	wg.Wait()

	results := &BatchResults{
		Total:   len(texts),
		Ham:     int(hamCount),
		Spam:    int(spamCount),
		Unknown: int(unknownCount),
	}

	return predictions, results
}
