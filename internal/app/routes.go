package app

import (
	"hash/maphash"
	"math/rand/v2"
	"net/http"

	"github.com/vancomm/minesweeper-ai/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// mount serves h under base, so the service can live behind a path
// prefix on a shared domain. An empty base leaves h untouched.
func mount(base string, h http.Handler) http.Handler {
	if base == "" {
		return h
	}
	mux := http.NewServeMux()
	mux.Handle(base+"/", http.StripPrefix(base, h))
	return mux
}

func (a *App) routes() *http.ServeMux {
	mux := http.NewServeMux()

	game := handlers.NewGame(a.log, a.db, a.ws, createRand())
	mux.HandleFunc("POST /game", game.Create)
	mux.HandleFunc("GET /game/{id}", game.Fetch)
	mux.HandleFunc("POST /game/{id}/open", game.Open)
	mux.HandleFunc("GET /game/{id}/hint", game.Hint)
	mux.HandleFunc("POST /game/{id}/autoplay", game.Autoplay)
	mux.HandleFunc("GET /game/{id}/watch", game.Watch)
	mux.HandleFunc("GET /highscores", game.Highscores)

	auth := handlers.NewAuth(a.log, a.db, a.cookies, a.jwt)
	mux.HandleFunc("POST /register", auth.Register)
	mux.HandleFunc("POST /login", auth.Login)
	mux.HandleFunc("POST /logout", auth.Logout)
	mux.HandleFunc("GET /status", auth.Status)

	return mux
}
