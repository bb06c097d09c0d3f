package main

import (
	"encoding/json"
	"net/http"

	"github.com/km-arc/go-container/app"
	fwapp "github.com/km-arc/go-container/framework/app"
	"github.com/km-arc/go-container/framework/container"
	gohttp "github.com/km-arc/go-container/framework/http"
	"github.com/km-arc/go-container/framework/routing"
)

func main() {
	application := fwapp.New() // loads .env automatically

	application.Register(&app.CatalogServiceProvider{})
	application.Boot()

	r := application.Router()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		res := gohttp.NewResponse(w)
		res.Success(map[string]any{"message": "Welcome to go-container!"})
	})

	r.Prefix("/api/v1", func(api *routing.Router) {

		// GET /api/v1/movies
		api.Get("/movies", func(w http.ResponseWriter, req *http.Request) {
			res := gohttp.NewResponse(w)
			catalog := container.MustResolve[*app.Catalog](application.Container, "catalog")

			out := make([]map[string]any, 0)
			for _, m := range catalog.All() {
				out = append(out, map[string]any{
					"title": m.Title,
					"year":  m.Year,
					"lead":  m.Lead.Name(),
				})
			}
			res.Success(out)
		})

		// GET /api/v1/movies/{title}
		api.Get("/movies/{title}", func(w http.ResponseWriter, req *http.Request) {
			res := gohttp.NewResponse(w)
			catalog := container.MustResolve[*app.Catalog](application.Container, "catalog")

			title := routing.Param(req, "title")
			movie, ok := catalog.Find(title)
			if !ok {
				res.NotFound()
				return
			}
			res.Success(map[string]any{
				"title": movie.Title,
				"year":  movie.Year,
				"lead":  movie.Lead.Name(),
			})
		})

		// POST /api/v1/movies — built through the container, not a literal
		api.Post("/movies", func(w http.ResponseWriter, req *http.Request) {
			res := gohttp.NewResponse(w)

			var body struct {
				Title string `json:"title"`
				Year  int    `json:"year"`
			}
			if err := decodeJSON(req, &body); err != nil {
				res.Error(http.StatusBadRequest, err.Error())
				return
			}

			def := container.NewDefinition(app.MovieKey).
				AddMethodCall("SetTitle", body.Title).
				AddMethodCall("SetYear", body.Year)

			built, err := application.CreateFromDefinition(def)
			if err != nil {
				res.ServerError(err.Error())
				return
			}
			movie := built.(*app.Movie)

			catalog := container.MustResolve[*app.Catalog](application.Container, "catalog")
			catalog.Add(movie)

			res.Created(map[string]any{"title": movie.Title, "year": movie.Year})
		})
	})

	application.Run()
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
