package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BannerSlides are the promo slides of the carousel
var BannerSlides = []string{
	"Скидки до 50% на летнюю коллекцию",
	"Новинки недели уже в каталоге",
	"Бесплатная доставка от 3 000 ₽",
}

var bottomNavItems = []string{"Главная", "Каталог", "Избранное", "Корзина", "Профиль"}

// ChromeRenderer renders the page frame around the product grid
type ChromeRenderer struct {
	styles *Styles
}

// NewChromeRenderer creates a new chrome renderer
func NewChromeRenderer(styles *Styles) *ChromeRenderer {
	return &ChromeRenderer{styles: styles}
}

// RenderTopNav shows "Назад" while typing a search and "Закрыть" otherwise
func (c *ChromeRenderer) RenderTopNav(searching, showingResults bool, width int) string {
	button := "✕ Закрыть"
	if searching && !showingResults {
		button = "← Назад"
	}
	left := c.styles.NavButton.Render(button)
	right := c.styles.Dim.Render("наш tg-канал")
	return spread(left, right, width)
}

// RenderBanner renders the current slide and the dot indicator
func (c *ChromeRenderer) RenderBanner(current, width int) string {
	if len(BannerSlides) == 0 {
		return ""
	}
	current = ((current % len(BannerSlides)) + len(BannerSlides)) % len(BannerSlides)

	bannerWidth := width - 6
	if bannerWidth < 20 {
		bannerWidth = 20
	}
	slide := c.styles.Banner.Width(bannerWidth).Render(BannerSlides[current])

	dots := make([]string, len(BannerSlides))
	for i := range BannerSlides {
		if i == current {
			dots[i] = c.styles.DotActive.Render("●")
		} else {
			dots[i] = c.styles.Dot.Render("○")
		}
	}
	indicator := lipgloss.PlaceHorizontal(lipgloss.Width(slide), lipgloss.Center, strings.Join(dots, " "))
	return slide + "\n" + indicator
}

// RenderCategories renders the horizontally scrolled category strip.
// offset is the index of the first visible category.
func (c *ChromeRenderer) RenderCategories(categories []string, offset, width int) string {
	if len(categories) == 0 {
		return ""
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(categories) {
		offset = len(categories) - 1
	}

	avail := width - 8
	if avail < 20 {
		avail = 20
	}

	var parts []string
	used := 0
	last := offset
	for i := offset; i < len(categories); i++ {
		style := c.styles.Category
		if i == offset {
			style = c.styles.CategorySel
		}
		item := style.Render(categories[i])
		if used+lipgloss.Width(item) > avail && len(parts) > 0 {
			break
		}
		parts = append(parts, item)
		used += lipgloss.Width(item) + 1
		last = i
	}

	left, right := " ", " "
	if offset > 0 {
		left = c.styles.Dim.Render("‹")
	}
	if last < len(categories)-1 {
		right = c.styles.Dim.Render("›")
	}
	return left + " " + strings.Join(parts, " ") + " " + right
}

// RenderFooter renders the platform line
func (c *ChromeRenderer) RenderFooter(width int) string {
	return spread(c.styles.Footer.Render("Разработано на платформе Noxer"), c.styles.Dim.Render("noxerai_bot"), width)
}

// RenderBottomNav renders the tab bar at the bottom of the page
func (c *ChromeRenderer) RenderBottomNav(width int) string {
	items := make([]string, len(bottomNavItems))
	for i, item := range bottomNavItems {
		style := c.styles.Dim
		if i == 0 {
			style = c.styles.NavButton
		}
		items[i] = style.Render(item)
	}
	w := width - 4
	if w < 20 {
		w = 20
	}
	row := lipgloss.PlaceHorizontal(w, lipgloss.Center, strings.Join(items, "   "))
	return c.styles.BottomNav.Width(w).Render(row)
}

// spread places left and right at the two edges of the content width
func spread(left, right string, width int) string {
	termWidth := width
	if termWidth <= 0 {
		termWidth = 80
	}
	available := termWidth - 4 // main container padding
	padding := available - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return left + strings.Repeat(" ", padding) + right
}
