package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gur-shatz/hashburger/internal/config"
	"github.com/gur-shatz/hashburger/internal/log"
	"github.com/gur-shatz/hashburger/internal/server"
	"github.com/gur-shatz/hashburger/pkg/hashburger"
)

var _ = Describe("Server", func() {
	var ts *httptest.Server

	BeforeEach(func() {
		srv := server.New(config.Default(), log.New("[test]", false).WithOutput(io.Discard))
		ts = httptest.NewServer(srv.Routes())
		DeferCleanup(ts.Close)
	})

	get := func(path string, query url.Values) (int, map[string]string) {
		resp, err := http.Get(ts.URL + path + "?" + query.Encode())
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		Expect(resp.Header.Get("Content-Type")).To(Equal("application/json"))

		var body map[string]string
		Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
		return resp.StatusCode, body
	}

	It("reports health", func() {
		status, body := get("/health", url.Values{})
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(HaveKeyWithValue("status", "ok"))
	})

	Describe("GET /hash", func() {
		It("returns the same hashburger as the library", func() {
			status, body := get("/hash", url.Values{"input": {"abcdefghijk"}})
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(HaveKeyWithValue("input", "abcdefghijk"))
			Expect(body).To(HaveKeyWithValue("hashburger",
				hashburger.Burgerize("abcdefghijk", hashburger.DefaultOptions())))
		})

		It("applies query overrides", func() {
			status, body := get("/hash", url.Values{
				"input":        {"ab"},
				"padding_char": {"x"},
			})
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(HaveKeyWithValue("hashburger", "abxxxxxxxx"))
		})

		It("requires an input", func() {
			status, body := get("/hash", url.Values{})
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(body["error"]).To(ContainSubstring("input"))
		})

		It("rejects unknown parameters", func() {
			status, body := get("/hash", url.Values{"input": {"x"}, "patty": {"3"}})
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(body["error"]).To(ContainSubstring("patty"))
		})

		It("rejects invalid settings", func() {
			status, _ := get("/hash", url.Values{"input": {"x"}, "left_bun_length": {"-1"}})
			Expect(status).To(Equal(http.StatusBadRequest))

			status, _ = get("/hash", url.Values{"input": {"x"}, "algorithm": {"rot13"}})
			Expect(status).To(Equal(http.StatusBadRequest))
		})

		It("rejects oversized lengths", func() {
			status, body := get("/hash", url.Values{
				"input":         {"a"},
				"padding_char":  {"x"},
				"center_length": {"2000000000"},
			})
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(body["error"]).To(ContainSubstring("CenterLength"))
		})
	})

	Describe("GET /hash-path", func() {
		BeforeEach(func() {
			if filepath.Separator != '/' {
				Skip("POSIX path layout")
			}
		})

		It("burgerizes paths", func() {
			status, body := get("/hash-path", url.Values{
				"input":            {"/a/b/c/d/e"},
				"start_components": {"2"},
				"end_components":   {"1"},
			})
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(HaveKeyWithValue("hashburger", "/a/b:e"))
		})

		It("rejects paths that are not text", func() {
			status, body := get("/hash-path", url.Values{"input": {"/a/\xff/b"}})
			Expect(status).To(Equal(http.StatusUnprocessableEntity))
			Expect(body["error"]).To(ContainSubstring("UTF-8"))
		})

		It("rejects a multi-character divider", func() {
			status, _ := get("/hash-path", url.Values{"input": {"/a"}, "divider": {"::"}})
			Expect(status).To(Equal(http.StatusBadRequest))
		})
	})
})
