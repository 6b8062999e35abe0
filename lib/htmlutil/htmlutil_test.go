package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestJoinText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<div class="raid-rating">
			<span>Demon Lord:</span>
			<span>  4.5 </span>
			<div class="star-ratings"><i class="fas fa-star"></i></div>
		</div>`))
	require.NoError(t, err)

	text := JoinText(doc.Find("div.raid-rating"), " ")
	require.Equal(t, "Demon Lord: 4.5", text)
}

func TestNormalizeText(t *testing.T) {
	require.Equal(t, "Fire Knight", NormalizeText("\n\t Fire   Knight \u200b"))
}

func TestAssetKey(t *testing.T) {
	testCases := []struct {
		src      string
		expected string
	}{
		{src: "/wp-content/plugins/rsl-assets/assets/factions/shadowkin.png", expected: "shadowkin"},
		{src: "https://hellhades.com/assets/artwork/affinity/magic.png?ver=2", expected: "magic"},
		{src: "high_elves.webp", expected: "high_elves"},
		{src: "", expected: ""},
		{src: "/", expected: ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, AssetKey(test.src), test.src)
	}
}
