// Package identity resolves the author and organization details stamped
// into generated boilerplate.
//
// Values come from an optional repoforge.yml config file or REPOFORGE_*
// environment variables, with a pure in-memory fallback for every field, so
// generation works identically in any environment. Callers receive a
// resolved Info and pass it down; nothing below this package reads
// configuration.
package identity

import (
	"strings"

	"github.com/spf13/viper"
)

// Info carries the identity fields templates may reference.
type Info struct {
	AuthorName  string `mapstructure:"author_name"`
	AuthorEmail string `mapstructure:"author_email"`
	OrgName     string `mapstructure:"org_name"`
	OrgEmail    string `mapstructure:"org_email"`
	GitHubUser  string `mapstructure:"github_user"`
}

// Fallback returns the built-in defaults used when no configuration is
// found.
func Fallback() Info {
	return Info{
		AuthorName:  "Repo Forge Team",
		AuthorEmail: "team@example.com",
		OrgName:     "Repo Forge",
		OrgEmail:    "org@example.com",
		GitHubUser:  "repoforge",
	}
}

// Resolve loads identity configuration from the conventional locations
// (repoforge.yml in the working directory or $HOME/.config/repoforge) and
// the environment. Missing fields fall back per-field; a missing config
// file is not an error.
func Resolve() Info {
	v := viper.New()
	v.SetConfigName("repoforge")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/repoforge")

	v.SetEnvPrefix("REPOFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Best effort: absent or unreadable config just means fallbacks.
	_ = v.ReadInConfig()

	return Load(v)
}

// Load extracts an Info from an already-configured viper instance, filling
// any missing field from Fallback.
func Load(v *viper.Viper) Info {
	fallback := Fallback()
	info := Info{
		AuthorName:  stringOr(v, "author_name", fallback.AuthorName),
		AuthorEmail: stringOr(v, "author_email", fallback.AuthorEmail),
		OrgName:     stringOr(v, "org_name", fallback.OrgName),
		OrgEmail:    stringOr(v, "org_email", fallback.OrgEmail),
		GitHubUser:  stringOr(v, "github_user", fallback.GitHubUser),
	}
	return info
}

func stringOr(v *viper.Viper, key, fallback string) string {
	if value := v.GetString(key); value != "" {
		return value
	}
	return fallback
}
