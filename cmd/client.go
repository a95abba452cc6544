package cmd

import (
	"fmt"
	"os"
	"time"

	"evidencija/cli/internal/backend"
	"evidencija/cli/internal/credentials"
	"evidencija/cli/internal/keychain"
	"evidencija/cli/internal/tokeninfo"

	"github.com/pterm/pterm"
	"go.uber.org/zap"
)

// tokenStore returns the OS keychain, or nil when none can be opened.
func tokenStore() credentials.Store {
	km, err := keychain.GetManager()
	if err != nil {
		logger.Debug("keychain unavailable", zap.Error(err))
		return nil
	}
	return km
}

// withAPI resolves the bearer token and passes a backend built from the
// loaded configuration to fn. The token is released when fn returns.
func withAPI(spinnerText string, fn func(backend.API) error) error {
	return credentials.With(getenv, tokenStore(), func(tok *credentials.Token) error {
		logger.Debug("using token", zap.String("source", string(tok.Source)))
		warnIfExpired(tok.Bearer())

		api := backend.New(backend.Options{
			BaseURL:   cfg.BaseURL,
			Endpoints: cfg.Endpoints,
			Token:     tok.Bearer(),
			Timeout:   cfg.Timeout,
			Logger:    logger,
		})
		return fn(withSpinner(api, spinnerText))
	})
}

// warnIfExpired prints a warning for JWTs whose exp claim has passed.
// Opaque tokens are sent as-is.
func warnIfExpired(token string) {
	claims, err := tokeninfo.Inspect(token)
	if err != nil {
		return
	}
	if claims.Expired(time.Now()) {
		pterm.Warning.WithWriter(os.Stderr).Println(fmt.Sprintf(
			"Token expired at %s; the API will likely reject it. Run 'evidencija login' with a fresh token.",
			claims.ExpiresAt.Local().Format(time.RFC1123)))
	}
}

// outputPath returns the --output flag when set, else the configured path.
func outputPath(flag, configured string) string {
	if flag != "" {
		return flag
	}
	return configured
}
