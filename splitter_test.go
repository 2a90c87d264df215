package sentseg

import (
	"strings"
	"sync"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type splitCase struct {
	name string
	text string
	want []string
}

var zhCases = []splitCase{
	{"simple", "今天天气很好。我很开心！", []string{"今天天气很好。", "我很开心！"}},
	{"short merged", "好。走吧。", []string{"好。走吧。"}},
	{"repeated end marks", "真的吗？！好吧。", []string{"真的吗？！", "好吧。"}},
	{"closing quote", "他说：“今天很好。”我同意。", []string{"他说：“今天很好。”", "我同意。"}},
	{"opening quote", "今天很好。“走吧。”他说。", []string{"今天很好。", "“走吧。”", "他说。"}},
	{"quote after ideograph", "他说“今天很好。我们走吧。”然后走了。", []string{"他说“今天很好。我们走吧。”", "然后走了。"}},
	{"corner brackets", "书名叫「春天。夏天」很好看。", []string{"书名叫「春天。夏天」很好看。"}},
	{"brackets", "他（很高兴。）走了。", []string{"他（很高兴。）走了。"}},
	{"book title", "我读了《你好。世界》这本书。", []string{"我读了《你好。世界》这本书。"}},
	{"unbalanced quote", "他说：“今天很好。我们走吧。", []string{"他说：“今天很好。我们走吧。"}},
	{"no end mark", "没有标点的文字", []string{"没有标点的文字"}},
	{"leading space", "  你好吗？ 我很好。", []string{"你好吗？", "我很好。"}},
}

var enCases = []splitCase{
	{"simple", "The sun is up. We go out!", []string{"The sun is up.", "We go out!"}},
	{"short merged", "Hi! Yes.", []string{"Hi! Yes."}},
	{"decimal", "The price is 3.50 dollars. Buy now.", []string{"The price is 3.50 dollars.", "Buy now."}},
	{"quoted speech", `He said "Go home." Then he left.`, []string{`He said "Go home."`, "Then he left."}},
	{"apostrophe", "I don’t know. It’s fine.", []string{"I don’t know.", "It’s fine."}},
	{"ascii apostrophe", "I don't know. It's fine.", []string{"I don't know.", "It's fine."}},
	{"single quotes", "'Hello there.' He left.", []string{"'Hello there.'", "He left."}},
	{"no whitelist", "Prof. Smith went home. He was tired.", []string{"Prof.", "Smith went home.", "He was tired."}},
}

func runCases(t *testing.T, v Variant, cases []splitCase) {
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Split(tc.text, v, nil)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSplitZH(t *testing.T) {
	runCases(t, ZH, zhCases)
}

func TestSplitEN(t *testing.T) {
	runCases(t, EN, enCases)
}

func TestSplitEmpty(t *testing.T) {
	assert.Empty(t, Split("", ZH, nil))
	assert.Empty(t, Split("", EN, nil))
	assert.Empty(t, Split("   \n ", ZH, nil))
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func TestSplitPreservesText(t *testing.T) {
	for _, tc := range append(append([]splitCase{}, zhCases...), enCases...) {
		for _, v := range []Variant{ZH, EN} {
			got := Split(tc.text, v, nil)
			for _, s := range got {
				assert.NotEmpty(t, s)
				assert.False(t, unicode.IsSpace([]rune(s)[0]), "leading space in %q", s)
			}
			assert.Equal(t, stripSpace(tc.text), stripSpace(strings.Join(got, "")), "%s/%s", tc.name, v)
		}
	}
}

func TestSplitIdempotent(t *testing.T) {
	for _, tc := range zhCases {
		for _, s := range Split(tc.text, ZH, nil) {
			assert.Equal(t, []string{s}, Split(s, ZH, nil))
		}
	}
	for _, tc := range enCases {
		for _, s := range Split(tc.text, EN, nil) {
			assert.Equal(t, []string{s}, Split(s, EN, nil))
		}
	}
}

func TestLongCutAtCommaZH(t *testing.T) {
	cfg := &Config{MaxLength: 10}
	got := Split("一二三四五六，七八九十甲乙丙丁。", ZH, cfg)
	assert.Equal(t, []string{"一二三四五六，", "七八九十甲乙丙丁。"}, got)
}

func TestLongCutAtQuoteZH(t *testing.T) {
	cfg := &Config{MaxLength: 10}
	got := Split("（他说“好的。”然后，走了很远很远", ZH, cfg)
	assert.Equal(t, []string{"（他说“好的。”", "然后，走了很远很远"}, got)
}

func TestHardCutZH(t *testing.T) {
	cfg := &Config{MaxLength: 5, HardMax: 8}
	got := Split("一二三四五六七八九十", ZH, cfg)
	assert.Equal(t, []string{"一二三四五六七八", "九十"}, got)
}

func TestDeferredLongCutZH(t *testing.T) {
	cfg := &Config{MaxLength: 5, HardMax: 20}
	got := Split("一二三四五六七。八九", ZH, cfg)
	assert.Equal(t, []string{"一二三四五六七。", "八九"}, got)
}

func TestLongCutAtCommaEN(t *testing.T) {
	cfg := &Config{MaxLength: 50, HardMax: 100}
	got := Split("We walked along the river for a long time, and then we went home to rest.", EN, cfg)
	assert.Equal(t, []string{
		"We walked along the river for a long time,",
		"and then we went home to rest.",
	}, got)
}

func TestLongCutUsesLexicon(t *testing.T) {
	text := "Yesterday, we met in the old town, however the rain never stopped."
	cfg := &Config{MaxLength: 60, HardMax: 200}
	got := Split(text, EN, cfg)
	assert.Equal(t, []string{
		"Yesterday, we met in the old town,",
		"however the rain never stopped.",
	}, got)
	//
	lex, err := NewLexicon(map[string]int{", however": 0})
	require.NoError(t, err)
	cfg.Lexicon = lex
	got = Split(text, EN, cfg)
	assert.Equal(t, []string{
		"Yesterday,",
		"we met in the old town, however the rain never stopped.",
	}, got)
}

func TestHardCutEN(t *testing.T) {
	cfg := &Config{MaxLength: 10, HardMax: 20}
	got := Split("aaaa bbbb cccc dddd eeee ffff", EN, cfg)
	assert.Equal(t, []string{"aaaa bbbb cccc dddd", "eeee ffff"}, got)
}

func TestWhitelistEN(t *testing.T) {
	cfg := &Config{Whitelist: NewWhitelist("Dr.")}
	got := Split("Dr. Smith went home. He was tired.", EN, cfg)
	assert.Equal(t, []string{"Dr. Smith went home.", "He was tired."}, got)
	//
	cfg = &Config{Whitelist: NewWhitelist("Prof.", "U. S.")}
	got = Split("Prof. Smith went home. He was tired.", EN, cfg)
	assert.Equal(t, []string{"Prof. Smith went home.", "He was tired."}, got)
	got = Split("He moved to the U. S. last year. It was cold.", EN, cfg)
	assert.Equal(t, []string{"He moved to the U. S. last year.", "It was cold."}, got)
}

func TestWhitelistBeforeClosingQuote(t *testing.T) {
	text := `He said "Hi Mr." Smith went away.`
	assert.Equal(t, []string{`He said "Hi Mr."`, "Smith went away."}, Split(text, EN, nil))
	cfg := &Config{Whitelist: NewWhitelist("Mr.")}
	assert.Equal(t, []string{text}, Split(text, EN, cfg))
}

func TestTerminatesOnAnyInput(t *testing.T) {
	inputs := []string{
		"。。。。。", "“““““", "”””", "((((好。", "》》》。", `""""""`, "....", "!!!",
		strings.Repeat("很", 1000), strings.Repeat("a ", 700), strings.Repeat("，", 300),
		strings.Repeat("word, ", 200), strings.Repeat("“好。", 100),
	}
	for _, text := range inputs {
		for _, v := range []Variant{ZH, EN} {
			got := Split(text, v, nil)
			assert.Equal(t, stripSpace(text), stripSpace(strings.Join(got, "")))
		}
	}
}

func TestSplitter(t *testing.T) {
	_, err := NewSplitter(Variant(7), nil)
	assert.Error(t, err)
	//
	s, err := NewSplitter(ZH, nil)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, ZH, s.Variant())
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				for _, tc := range zhCases {
					if got := s.Split(tc.text); !assert.Equal(t, tc.want, got, tc.name) {
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestSplitterAfterClose(t *testing.T) {
	s, err := NewSplitter(EN, nil)
	require.NoError(t, err)
	s.Close()
	got := s.Split("The sun is up. We go out!")
	assert.Equal(t, []string{"The sun is up.", "We go out!"}, got)
}
