package log_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gur-shatz/hashburger/internal/log"
)

var _ = Describe("Logger", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = &bytes.Buffer{}
	})

	It("prefixes every line", func() {
		l := log.New("[test]", false).WithOutput(buf)
		l.Status("serving on %s", ":8080")
		l.Warn("careful")
		Expect(buf.String()).To(Equal("[test] serving on :8080\n[test] careful\n"))
	})

	It("labels errors", func() {
		l := log.New("[test]", false).WithOutput(buf)
		l.Error("boom: %d", 3)
		Expect(buf.String()).To(Equal("[test] Error: boom: 3\n"))
	})

	It("drops verbose messages unless enabled", func() {
		log.New("[test]", false).WithOutput(buf).Verbose("hidden")
		Expect(buf.String()).To(BeEmpty())

		log.New("[test]", true).WithOutput(buf).Verbose("shown")
		Expect(buf.String()).To(Equal("[test] shown\n"))
	})
})
