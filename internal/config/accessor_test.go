package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/gur-shatz/hashburger/internal/config"
)

var _ = Describe("Config O", func() {
	var cfg config.O

	BeforeEach(func() {
		yamlData := `
burger:
  left_bun_length: 6
  padding_char: "-"
path:
  divider: "|"
`
		Expect(yaml.Unmarshal([]byte(yamlData), &cfg)).To(Succeed())
	})

	Describe("Set", func() {
		It("should overwrite existing values", func() {
			cfg.Set("burger.left_bun_length", 2)
			Expect(cfg["burger"]).To(HaveKeyWithValue("left_bun_length", 2))
		})

		It("should create intermediate maps", func() {
			o := config.O{}
			o.Set("serve.addr", ":9000")
			Expect(o["serve"]).To(HaveKeyWithValue("addr", ":9000"))
		})
	})

	Describe("DecodeInto", func() {
		It("should overlay present keys only", func() {
			s := config.Default()
			Expect(cfg.DecodeInto(&s)).To(Succeed())
			Expect(s.Burger.LeftBunLength).To(Equal(6))
			Expect(s.Burger.PaddingChar).To(Equal("-"))
			Expect(s.Burger.CenterLength).To(Equal(2))
			Expect(s.Path.Divider).To(Equal("|"))
			Expect(s.Path.StartComponents).To(Equal(2))
		})

		It("should accept weakly typed values", func() {
			o := config.O{}
			o.Set("burger.center_length", "5")
			o.Set("burger.graphemes", "true")
			s := config.Default()
			Expect(o.DecodeInto(&s)).To(Succeed())
			Expect(s.Burger.CenterLength).To(Equal(5))
			Expect(s.Burger.Graphemes).To(BeTrue())
		})

		It("should reject unknown keys", func() {
			o := config.O{}
			o.Set("burger.middle_length", 3)
			s := config.Default()
			Expect(o.DecodeInto(&s)).To(MatchError(ContainSubstring("middle_length")))
		})

		It("should validate when asked", func() {
			o := config.O{}
			o.Set("path.divider", "::")
			s := config.Default()
			Expect(o.DecodeInto(&s)).To(Succeed())
			Expect(o.DecodeInto(&s, config.WithValidation())).To(MatchError(ContainSubstring("validation failed")))
		})
	})
})
