// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the API endpoints to their handlers.

NewRouter builds an *http.ServeMux using Go 1.22+ method patterns:

	mux := router.NewRouter(db, cfg)
	server := http.Server{Handler: middleware.CORS(mux)}

# Routes

	GET  /api/health                  liveness probe
	GET  /api/menu/today              today's menu mapping
	POST /api/menu/set                manager menu replace
	POST /api/preferences             attendance intent upsert
	GET  /api/stats/today             grouped preference tallies
	GET  /api/voting/weekly-options   configured option set
	POST /api/voting/weekly-options   replace-all option set
	POST /api/voting/weekly-vote      vote upsert
	GET  /api/voting/weekly-results   vote tallies
	POST /api/feedback                star-rated feedback
	GET  /api/feedback/recent         recent feed with time-ago labels
	GET  /api/metrics                 dashboard tiles
	GET  /                            version banner

All routes except health and root are wrapped with request logging.
CORS is applied around the whole mux in main.
*/
package router
