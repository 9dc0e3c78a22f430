package cmd

import (
	"context"

	"github.com/smsguard/spam-classifier/pkg/config"
	"github.com/smsguard/spam-classifier/pkg/model"
	"github.com/smsguard/spam-classifier/pkg/textproc"
)

// saveTrainedModel stores a model in the configured backend
func saveTrainedModel(cfg *config.Config, m *model.Model) error {
	if cfg.Model.Backend == "redis" {
		store, err := model.NewRedisStore(&cfg.Model.Redis)
		if err != nil {
			return err
		}
		defer store.Close()
		return store.Save(context.Background(), m)
	}

	return model.SaveModel(cfg.Model.ModelPath, m, &cfg.Tokenizer)
}

// loadTrainedModel reads a model from the configured backend, along with
// the normalizer settings it should be used with. The file backend stores
// those settings with the model; the redis backend uses the configured ones.
func loadTrainedModel(cfg *config.Config) (*model.Model, *textproc.NormalizerConfig, error) {
	if cfg.Model.Backend == "redis" {
		store, err := model.NewRedisStore(&cfg.Model.Redis)
		if err != nil {
			return nil, nil, err
		}
		defer store.Close()

		m, err := store.Load(context.Background())
		if err != nil {
			return nil, nil, err
		}
		return m, &cfg.Tokenizer, nil
	}

	return model.LoadModel(cfg.Model.ModelPath)
}
