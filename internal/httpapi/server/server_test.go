package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/walavie/walavie-site/pkg/cache/inmemory"
	"github.com/walavie/walavie-site/pkg/config"
	"github.com/walavie/walavie-site/pkg/store"
)

func newStorage() *store.MemStorage {
	c, err := inmemory.NewCache(&inmemory.Config{DefaultExpiration: 300, CleanupInterval: 600})
	Expect(err).NotTo(HaveOccurred())
	s, err := store.New(context.Background(), c)
	Expect(err).NotTo(HaveOccurred())
	return s
}

func baseConfig() *config.AppConfig {
	return &config.AppConfig{
		App: config.App{Name: "walavie-site", Version: "v0.0.1", Environment: "test"},
		APIServer: config.APIServerConfig{
			Host: "127.0.0.1",
			Port: 5000,
			CORS: config.CORS{
				AllowedOrigins: []string{"https://walavie.dev"},
				AllowedMethods: []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders: []string{"Content-Type", "X-API-Key"},
			},
			Auth: config.Auth{Enabled: true, APIKeys: []string{"admin-key"}},
		},
	}
}

func request(h http.Handler, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var decoded map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	return w, decoded
}

var _ = Describe("APIServer", func() {
	var (
		cfg       *config.AppConfig
		dataStore *store.MemStorage
		handler   http.Handler
	)

	BeforeEach(func() {
		cfg = baseConfig()
		dataStore = newStorage()
	})

	JustBeforeEach(func() {
		handler = NewAPIServer(cfg, dataStore, nil).Handler()
	})

	Context("form endpoints", func() {
		It("acknowledges a valid newsletter signup", func() {
			w, body := request(handler, http.MethodPost, "/api/newsletter", `{"email":"user@example.com"}`, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(body).To(HaveKeyWithValue("success", true))
			Expect(body).To(HaveKeyWithValue("message", "Subscription successful"))
			Expect(w.Header().Get("X-Request-ID")).NotTo(BeEmpty())
		})

		It("rejects an invalid newsletter email", func() {
			w, body := request(handler, http.MethodPost, "/api/newsletter", `{"email":"not-an-email"}`, nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(body).To(HaveKeyWithValue("success", false))
		})

		It("stores contact submissions with sequential ids", func() {
			for i := 1; i <= 3; i++ {
				payload := fmt.Sprintf(`{"name":"N%d","email":"n%d@example.com","message":"m"}`, i, i)
				w, body := request(handler, http.MethodPost, "/api/contact", payload, nil)
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(body).To(HaveKeyWithValue("id", float64(i)))
			}

			all, err := dataStore.GetAllContactSubmissions(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(3))
		})

		It("answers CORS preflight requests", func() {
			w, _ := request(handler, http.MethodOptions, "/api/contact", "", map[string]string{"Origin": "https://walavie.dev"})
			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("https://walavie.dev"))
		})

		It("returns JSON for unknown API routes", func() {
			w, body := request(handler, http.MethodGet, "/api/unknown", "", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(body).To(HaveKeyWithValue("success", false))
		})
	})

	Context("admin endpoints", func() {
		It("requires an API key", func() {
			w, _ := request(handler, http.MethodGet, "/api/admin/contact", "", nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))

			w, _ = request(handler, http.MethodGet, "/api/admin/contact", "", map[string]string{"X-API-Key": "wrong"})
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("lists submissions with a valid key", func() {
			request(handler, http.MethodPost, "/api/contact", `{"name":"Ada","email":"ada@example.com","message":"hi"}`, nil)

			w, body := request(handler, http.MethodGet, "/api/admin/contact", "", map[string]string{"X-API-Key": "admin-key"})
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(body["submissions"]).To(HaveLen(1))

			w, body = request(handler, http.MethodGet, "/api/admin/contact/1", "", map[string]string{"X-API-Key": "admin-key"})
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(body["submission"]).To(HaveKeyWithValue("email", "ada@example.com"))
		})

		When("auth is disabled", func() {
			BeforeEach(func() {
				cfg.APIServer.Auth = config.Auth{}
			})

			It("does not expose the admin routes", func() {
				w, _ := request(handler, http.MethodGet, "/api/admin/contact", "", nil)
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("static assets", func() {
		BeforeEach(func() {
			dir := GinkgoT().TempDir()
			Expect(os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>walavie</html>"), 0o600)).To(Succeed())
			Expect(os.MkdirAll(filepath.Join(dir, "assets"), 0o755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log('hi')"), 0o600)).To(Succeed())
			cfg.APIServer.StaticDir = dir
		})

		It("serves the landing page", func() {
			w, _ := request(handler, http.MethodGet, "/", "", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("walavie"))
		})

		It("serves asset files", func() {
			w, _ := request(handler, http.MethodGet, "/assets/app.js", "", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("console.log"))
		})

		It("falls back to index.html for client routes", func() {
			w, _ := request(handler, http.MethodGet, "/pricing", "", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("walavie"))
		})

		It("keeps JSON 404s for the API", func() {
			w, body := request(handler, http.MethodGet, "/api/missing", "", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(body).To(HaveKeyWithValue("success", false))
		})
	})

	Context("lifecycle", func() {
		It("serves until the context is cancelled", func() {
			srv := NewAPIServer(cfg, dataStore, nil)
			ln, err := net.Listen("tcp", "127.0.0.1:0")
			Expect(err).NotTo(HaveOccurred())

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() { done <- srv.Serve(ctx, ln) }()

			url := fmt.Sprintf("http://%s/api/status", ln.Addr().String())
			Eventually(func() (int, error) {
				resp, err := http.Get(url)
				if err != nil {
					return 0, err
				}
				defer resp.Body.Close()
				_, _ = io.Copy(io.Discard, resp.Body)
				return resp.StatusCode, nil
			}).WithTimeout(5 * time.Second).Should(Equal(http.StatusOK))

			cancel()
			Eventually(done).WithTimeout(5 * time.Second).Should(Receive(BeNil()))
		})

		It("fails to start on an address in use", func() {
			ln, err := net.Listen("tcp", "127.0.0.1:0")
			Expect(err).NotTo(HaveOccurred())
			defer ln.Close()

			cfg.APIServer.Port = ln.Addr().(*net.TCPAddr).Port
			srv := NewAPIServer(cfg, dataStore, nil)
			Expect(srv.Start(context.Background())).To(MatchError(ContainSubstring("failed to start http API server")))
		})
	})
})
