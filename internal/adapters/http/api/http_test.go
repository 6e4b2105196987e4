package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"showcase/internal/adapters/http/api"
	"showcase/internal/adapters/repository"
	"showcase/internal/domain/model"
	"showcase/internal/ratelimit"
	"showcase/pkg/logger"

	"github.com/go-chi/chi/v5"
	. "github.com/smartystreets/goconvey/convey"
)

// mockNotifier captures dispatched contact messages.
type mockNotifier struct {
	mu   sync.Mutex
	msgs []model.ContactMessage
}

func (m *mockNotifier) Dispatch(_ context.Context, msg model.ContactMessage) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, msg)
	return "test-ref"
}

func (m *mockNotifier) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.msgs)
}

// panicStore trips the recovery middleware.
type panicStore struct{}

func (panicStore) Projects(context.Context) ([]model.Project, error) {
	panic("store exploded")
}

func (panicStore) Students(context.Context) ([]model.Student, error) {
	panic("store exploded")
}

func newTestRouter(store api.Store, notifier api.Notifier, limiter api.Limiter, opts ...api.Option) http.Handler {
	logger.Init(true)
	if store == nil {
		store = repository.NewMemStore()
	}
	if notifier == nil {
		notifier = &mockNotifier{}
	}
	if limiter == nil {
		limiter = ratelimit.New()
	}
	s := api.NewServer(store, notifier, limiter, logger.Get(), opts...)
	r := chi.NewRouter()
	s.Register(context.Background(), r)
	return r
}

func doJSON(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	Convey("Given the API router", t, func() {
		router := newTestRouter(nil, nil, nil, api.WithEnvironment("development"))

		Convey("When requesting GET /api/health", func() {
			w := doJSON(router, http.MethodGet, "/api/health", "")

			Convey("Then it should answer 200 with status OK", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var body struct {
					Status      string `json:"status"`
					Message     string `json:"message"`
					Timestamp   string `json:"timestamp"`
					Environment string `json:"environment"`
				}
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body.Status, ShouldEqual, "OK")
				So(body.Message, ShouldNotBeEmpty)
				So(body.Environment, ShouldEqual, "development")

				_, err := time.Parse(time.RFC3339, body.Timestamp)
				So(err, ShouldBeNil)
			})
		})
	})
}

func TestIndexEndpoint(t *testing.T) {
	Convey("Given the API router", t, func() {
		router := newTestRouter(nil, nil, nil, api.WithVersion("2.3.4"))

		Convey("When requesting GET /api", func() {
			w := doJSON(router, http.MethodGet, "/api", "")

			Convey("Then it should describe the API", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var body struct {
					Message   string   `json:"message"`
					Version   string   `json:"version"`
					Endpoints []string `json:"endpoints"`
				}
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body.Message, ShouldNotBeEmpty)
				So(body.Version, ShouldEqual, "2.3.4")
				So(body.Endpoints, ShouldContain, "GET /api/projects")
				So(body.Endpoints, ShouldContain, "POST /api/contact")
			})
		})
	})
}

func TestProjectsEndpoint(t *testing.T) {
	Convey("Given the API router", t, func() {
		router := newTestRouter(nil, nil, nil)

		Convey("When requesting GET /api/projects", func() {
			w := doJSON(router, http.MethodGet, "/api/projects", "")

			Convey("Then it should return exactly two records with a matching count", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var body struct {
					Success bool            `json:"success"`
					Count   int             `json:"count"`
					Data    []model.Project `json:"data"`
				}
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body.Success, ShouldBeTrue)
				So(body.Data, ShouldHaveLength, 2)
				So(body.Count, ShouldEqual, len(body.Data))
			})

			Convey("Then responses should be identical across requests", func() {
				again := doJSON(router, http.MethodGet, "/api/projects", "")
				So(again.Body.String(), ShouldEqual, w.Body.String())
			})
		})
	})
}

func TestStudentsEndpoint(t *testing.T) {
	Convey("Given the API router", t, func() {
		router := newTestRouter(nil, nil, nil)

		Convey("When requesting GET /api/students", func() {
			w := doJSON(router, http.MethodGet, "/api/students", "")

			Convey("Then it should return two records with skill levels in range", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var body struct {
					Success bool            `json:"success"`
					Count   int             `json:"count"`
					Data    []model.Student `json:"data"`
				}
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body.Success, ShouldBeTrue)
				So(body.Count, ShouldEqual, 2)
				So(body.Data, ShouldHaveLength, 2)
				for _, s := range body.Data {
					for _, skill := range s.Skills {
						So(skill.Level, ShouldBeBetweenOrEqual, model.SkillLevelMin, model.SkillLevelMax)
					}
				}
			})
		})
	})
}

func TestContactEndpoint(t *testing.T) {
	Convey("Given the API router with a capturing notifier", t, func() {
		notifier := &mockNotifier{}
		router := newTestRouter(nil, notifier, nil)

		complete := map[string]string{
			"name":    "Maya Chen",
			"email":   "maya.chen@example.com",
			"subject": "Question",
			"message": "How do I join the showcase?",
		}

		encode := func(fields map[string]string) string {
			raw, _ := json.Marshal(fields)
			return string(raw)
		}

		Convey("When submitting a complete message", func() {
			w := doJSON(router, http.MethodPost, "/api/contact", encode(complete))

			Convey("Then it should answer 200 success and dispatch once", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var body struct {
					Success bool   `json:"success"`
					Message string `json:"message"`
				}
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body.Success, ShouldBeTrue)
				So(body.Message, ShouldNotBeEmpty)
				So(notifier.count(), ShouldEqual, 1)
				So(notifier.msgs[0].Subject, ShouldEqual, "Question")
			})
		})

		Convey("When omitting each field in turn", func() {
			for _, missing := range []string{"name", "email", "subject", "message"} {
				fields := make(map[string]string, len(complete))
				for k, v := range complete {
					if k != missing {
						fields[k] = v
					}
				}
				w := doJSON(router, http.MethodPost, "/api/contact", encode(fields))

				So(w.Code, ShouldEqual, http.StatusBadRequest)
				var body struct {
					Success bool   `json:"success"`
					Message string `json:"message"`
				}
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body.Success, ShouldBeFalse)
				So(body.Message, ShouldEqual, "all fields required")
			}

			Convey("Then nothing should be dispatched", func() {
				So(notifier.count(), ShouldEqual, 0)
			})
		})

		Convey("When submitting an empty object", func() {
			w := doJSON(router, http.MethodPost, "/api/contact", "{}")

			Convey("Then it should answer 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(notifier.count(), ShouldEqual, 0)
			})
		})

		Convey("When submitting malformed JSON", func() {
			w := doJSON(router, http.MethodPost, "/api/contact", "{not json")

			Convey("Then it should answer 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When submitting URL-encoded form data", func() {
			form := "name=Luis&email=luis%40example.com&subject=Hi&message=Hello"
			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Convey("Then it should answer 200 success", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(notifier.count(), ShouldEqual, 1)
				So(notifier.msgs[0].Email, ShouldEqual, "luis@example.com")
			})
		})
	})
}

func TestNotFoundFallback(t *testing.T) {
	Convey("Given the API router", t, func() {
		router := newTestRouter(nil, nil, nil)

		Convey("When requesting an undefined path", func() {
			w := doJSON(router, http.MethodGet, "/api/unknown", "")

			Convey("Then it should answer 404 with the available routes", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)

				var body struct {
					Success         bool     `json:"success"`
					Message         string   `json:"message"`
					AvailableRoutes []string `json:"available_routes"`
				}
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body.Success, ShouldBeFalse)
				So(body.Message, ShouldEqual, "route not found")
				So(body.AvailableRoutes, ShouldContain, "GET /api/health")
				So(body.AvailableRoutes, ShouldHaveLength, 5)
			})
		})

		Convey("When using an unsupported method on a known path", func() {
			w := doJSON(router, http.MethodDelete, "/api/projects", "")

			Convey("Then it should fall through to the same 404 body", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(w.Body.String(), ShouldContainSubstring, "route not found")
			})
		})
	})
}

func TestRateLimiting(t *testing.T) {
	Convey("Given a router limited to 100 requests per window", t, func() {
		limiter := ratelimit.New(
			ratelimit.WithLimit(100),
			ratelimit.WithWindow(15*time.Minute),
		)
		router := newTestRouter(nil, nil, limiter)

		Convey("When one address issues 101 /api requests", func() {
			var last *httptest.ResponseRecorder
			okCount := 0
			for i := 0; i < 101; i++ {
				req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
				req.RemoteAddr = "203.0.113.7:40000"
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)
				if w.Code == http.StatusOK {
					okCount++
				}
				last = w
			}

			Convey("Then the first 100 should pass and the 101st should be rejected", func() {
				So(okCount, ShouldEqual, 100)
				So(last.Code, ShouldEqual, http.StatusTooManyRequests)
				So(last.Header().Get("Retry-After"), ShouldNotBeEmpty)

				var body struct {
					Success bool   `json:"success"`
					Message string `json:"message"`
				}
				So(json.Unmarshal(last.Body.Bytes(), &body), ShouldBeNil)
				So(body.Success, ShouldBeFalse)
				So(body.Message, ShouldEqual, "too many requests from this IP, please try again later")
			})

			Convey("And a different address should be unaffected", func() {
				req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
				req.RemoteAddr = "198.51.100.9:40000"
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			})
		})

		Convey("When requesting a path outside /api", func() {
			limiter := ratelimit.New(ratelimit.WithLimit(1))
			router := newTestRouter(nil, nil, limiter)

			first := doJSON(router, http.MethodGet, "/api/health", "")
			So(first.Code, ShouldEqual, http.StatusOK)

			Convey("Then the limiter should not apply to non-API routes", func() {
				w := doJSON(router, http.MethodGet, "/metrics", "")
				So(w.Code, ShouldEqual, http.StatusOK)
			})
		})
	})
}

func TestMetricsEndpoint(t *testing.T) {
	Convey("Given the API router", t, func() {
		router := newTestRouter(nil, nil, nil)

		Convey("When scraping GET /metrics", func() {
			w := doJSON(router, http.MethodGet, "/metrics", "")

			Convey("Then it should serve the Prometheus exposition", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
			})
		})
	})
}
