// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package config

import (
	"strconv"
	"strings"
	"time"
)

// EnvPrefix prefixes every frontdesk environment variable.
const EnvPrefix = "FRONTDESK_"

type lookupFunc func(key string) (string, bool)

// applyEnvOverrides applies environment variable overrides to cfg.
// Unparseable numbers and durations are ignored.
func applyEnvOverrides(cfg *Config, lookup lookupFunc) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				*dst = n
			}
		}
	}
	float := func(key string, dst *float64) {
		if v, ok := lookup(key); ok {
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				*dst = f
			}
		}
	}
	dur := func(key string, dst *time.Duration) {
		if v, ok := lookup(key); ok {
			if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
				*dst = d
			}
		}
	}
	list := func(key string, dst *[]string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = splitList(v)
		}
	}

	// Hosting platforms inject PORT.
	num("PORT", &cfg.Server.Port)
	num(EnvPrefix+"PORT", &cfg.Server.Port)
	str(EnvPrefix+"HOST", &cfg.Server.Host)
	list(EnvPrefix+"CORS_ORIGINS", &cfg.Server.CORSOrigins)
	str(EnvPrefix+"ADMIN_TOKEN", &cfg.Server.AdminToken)

	str(EnvPrefix+"LOCATIONS_URL", &cfg.Feeds.LocationsURL)
	str(EnvPrefix+"JOBS_URL", &cfg.Feeds.JobsURL)
	dur(EnvPrefix+"FEED_TIMEOUT", &cfg.Feeds.Timeout)
	dur(EnvPrefix+"JOB_TTL", &cfg.Feeds.JobTTL)
	dur(EnvPrefix+"JOB_RETRY_AFTER", &cfg.Feeds.JobRetryAfter)

	str(EnvPrefix+"FAQ_DIR", &cfg.FAQ.Directory)

	str(EnvPrefix+"EMBEDDING_HOST", &cfg.Embedding.Host)
	str(EnvPrefix+"EMBEDDING_MODEL", &cfg.Embedding.Model)
	str(EnvPrefix+"EMBEDDING_API_KEY", &cfg.Embedding.APIKey)
	str("OPENAI_API_KEY", &cfg.Embedding.APIKey)

	num(EnvPrefix+"LOCATION_THRESHOLD", &cfg.Matching.Location.Threshold)
	float(EnvPrefix+"FAQ_THRESHOLD", &cfg.Matching.FAQThreshold)
	list(EnvPrefix+"IGNORED_ALIASES", &cfg.Matching.IgnoredAliases)

	str(EnvPrefix+"CACHE_DRIVER", &cfg.Cache.Driver)
	dur(EnvPrefix+"CACHE_TTL", &cfg.Cache.TTL)
	if v, ok := lookup("REDIS_URL"); ok && v != "" {
		cfg.Cache.Driver = CacheRedis
		cfg.Cache.Redis.URL = v
	}

	str(EnvPrefix+"STORAGE_PATH", &cfg.Storage.Path)

	str("LOG_LEVEL", &cfg.Log.Level)
	str(EnvPrefix+"LOG_LEVEL", &cfg.Log.Level)
	str(EnvPrefix+"LOG_FORMAT", &cfg.Log.Format)
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
