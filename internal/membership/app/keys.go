package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/cashbook/pkg/jwtx"
)

// InitVerifier loads the auth service's public keys and returns a verifier
// over them. With a JWKS URL the first fetch must succeed; the returned
// refresher keeps the set current and is nil for an inline JWKS.
func InitVerifier(ctx context.Context, cfg Config, logger *slog.Logger) (*jwtx.KeySet, jwtx.Verifier, *KeyRefresher, error) {
	keys := jwtx.NewKeySet()

	var refresher *KeyRefresher
	switch {
	case cfg.JWKS != "":
		jwks, err := jwtx.ParseJWKS([]byte(cfg.JWKS))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to parse AUTH_JWKS: %w", err)
		}
		if err := keys.ResetFromJWKS(jwks); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to load AUTH_JWKS: %w", err)
		}
		logger.Info("verification keys loaded from config", "num_keys", len(jwks.Keys))

	case cfg.JWKSURL != "":
		refresher = NewKeyRefresher(keys, cfg.JWKSURL, cfg.JWKSRefreshInterval, logger)
		if err := refresher.Refresh(ctx); err != nil {
			return nil, nil, nil, err
		}

	default:
		return nil, nil, nil, errors.New("one of AUTH_JWKS_URL or AUTH_JWKS is required")
	}

	if !keys.IsReady() {
		return nil, nil, nil, errors.New("no usable Ed25519 verification keys")
	}

	return keys, jwtx.NewCommonEdDSA(keys, cfg.Issuer, cfg.Audience), refresher, nil
}

// KeyRefresher polls the auth service's JWKS so rotated keys are picked up
// without a restart.
type KeyRefresher struct {
	Keys     *jwtx.KeySet
	URL      string
	Client   *http.Client
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewKeyRefresher creates a refresher. If interval is 0 or negative, defaults
// to 15 minutes.
func NewKeyRefresher(keys *jwtx.KeySet, url string, interval time.Duration, logger *slog.Logger) *KeyRefresher {
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	return &KeyRefresher{
		Keys:     keys,
		URL:      url,
		Client:   &http.Client{Timeout: 10 * time.Second},
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Refresh fetches the JWKS once and swaps it in.
func (r *KeyRefresher) Refresh(ctx context.Context) error {
	jwks, err := jwtx.FetchJWKS(ctx, r.Client, r.URL)
	if err != nil {
		return fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	if err := r.Keys.ResetFromJWKS(jwks); err != nil {
		return fmt.Errorf("failed to load JWKS: %w", err)
	}
	r.Logger.Debug("verification keys refreshed", "num_keys", len(jwks.Keys))
	return nil
}

// Start begins polling. Call Stop to end it.
func (r *KeyRefresher) Start() {
	go r.run()
	r.Logger.Info("jwks refresher started", "url", r.URL, "interval", r.Interval)
}

// Stop ends polling and waits for an in-flight fetch.
func (r *KeyRefresher) Stop() {
	close(r.stopCh)
	<-r.doneCh
	r.Logger.Info("jwks refresher stopped")
}

func (r *KeyRefresher) run() {
	defer close(r.doneCh)

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), r.Interval/2)
			// A failed refresh keeps the previous keys.
			if err := r.Refresh(ctx); err != nil {
				r.Logger.Warn("jwks refresh failed", "error", err)
			}
			cancel()
		case <-r.stopCh:
			return
		}
	}
}
