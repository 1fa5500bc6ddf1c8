package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/kei/rwadeck/internal/catalog"
	"github.com/kei/rwadeck/internal/portfolio"
)

func (a *App) View() string {
	var body string
	switch a.state {
	case viewDiscover:
		body = a.renderDiscover()
	case viewBrowse:
		body = a.renderBrowse()
	case viewLikes:
		body = a.renderLikes()
	case viewPortfolio:
		body = a.renderPortfolio()
	case viewSettings:
		body = a.renderSettings()
	}

	if a.loginOpen {
		body = a.renderLoginModal()
	}

	if a.stores.Sidebar.Open() && !a.loginOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebarStyle.Render(a.renderSidebar()), body)
	}

	sections := []string{a.renderTabs(), "", body}
	if a.status != "" {
		sections = append(sections, "", statusStyle.Render(a.status))
	}
	sections = append(sections, "", a.renderHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderTabs() string {
	labels := []struct{ en, ja string }{
		{"Discover", "発見"},
		{"Browse", "一覧"},
		{"Likes", "お気に入り"},
		{"Portfolio", "ポートフォリオ"},
		{"Settings", "設定"},
	}
	parts := make([]string, 0, len(labels))
	for i, l := range labels {
		label := a.tr(l.en, l.ja)
		if view(i) == a.state {
			parts = append(parts, tabActiveStyle.Render(label))
		} else {
			parts = append(parts, tabInactiveStyle.Render(label))
		}
	}
	title := titleStyle.Render("rwadeck")
	return title + "  " + strings.Join(parts, faintStyle.Render(" · "))
}

func (a *App) renderHelp() string {
	var bindings []key.Binding
	switch a.state {
	case viewDiscover:
		bindings = a.keys.discoverHelp()
	case viewBrowse:
		bindings = a.keys.browseHelp()
	case viewLikes:
		bindings = a.keys.likesHelp()
	default:
		bindings = []key.Binding{a.keys.NextTab, a.keys.Quit}
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", cursorStyle.Render(h.Key), faintStyle.Render(h.Desc)))
	}
	return strings.Join(parts, faintStyle.Render("  "))
}

// renderSidebar shows the category tiles with their declared counts.
func (a *App) renderSidebar() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render(a.tr("Categories", "カテゴリー")))
	b.WriteString("\n")
	for _, c := range a.cat.Categories() {
		fmt.Fprintf(&b, "%s %s %s\n", c.Icon, a.text(c.Name), faintStyle.Render(fmt.Sprintf("(%d)", c.AssetCount)))
	}
	b.WriteString("\n")
	if u, ok := a.stores.Session.Current(); ok {
		b.WriteString(labelStyle.Render(a.tr("Signed in", "サインイン中")))
		b.WriteString("\n" + u.Name)
	} else {
		b.WriteString(faintStyle.Render(a.tr("Not signed in", "未サインイン")))
	}
	return b.String()
}

func (a *App) renderDiscover() string {
	cur, ok := a.deck.Current()
	if !ok {
		msg := a.tr(
			"No more assets to discover.\n\nr restart · R reshuffle",
			"表示できるアセットがありません。\n\nr 最初から · R シャッフル",
		)
		return cardStyle.Render(msg)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(a.text(cur.Name)) + "\n")
	if p, ok := a.cat.ProjectByID(cur.ProjectID); ok {
		b.WriteString(labelStyle.Render(a.text(p.Name)) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(priceStyle.Render(formatYen(cur.PriceYen)))
	b.WriteString(faintStyle.Render(" / " + a.text(cur.UnitLabel)))
	b.WriteString("  " + a.renderChange(cur))
	b.WriteString("\n\n")
	b.WriteString(a.renderSoldBar(cur) + "\n\n")
	b.WriteString(a.renderInsights(cur.Insights))

	if a.stores.Likes.Liked(cur.ID) {
		b.WriteString("\n\n" + likeStyle.Render("♥ "+a.tr("Liked", "お気に入り済み")))
	}

	card := cardStyle.Render(b.String())
	counter := faintStyle.Render(fmt.Sprintf("%d / %d", a.deck.Cursor()+1, a.deck.Len()))
	return lipgloss.JoinVertical(lipgloss.Left, card, counter)
}

func (a *App) renderChange(asset catalog.Asset) string {
	pct := catalog.MockChangePercent(asset.ID)
	s := fmt.Sprintf("%+.2f%%", pct)
	if pct < 0 {
		return downStyle.Render(s)
	}
	return upStyle.Render(s)
}

// renderSoldBar draws sold progress out of the total offered units.
func (a *App) renderSoldBar(asset catalog.Asset) string {
	total := asset.TotalUnits()
	if total == 0 {
		return faintStyle.Render(a.tr("Not yet on sale", "販売開始前"))
	}
	const width = 24
	filled := asset.Sold * width / total
	bar := upStyle.Render(strings.Repeat("█", filled)) +
		faintStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %s", bar,
		labelStyle.Render(fmt.Sprintf(a.tr("%d of %d sold", "%d／%d口 販売済"), asset.Sold, total)))
}

func (a *App) renderInsights(in catalog.Insights) string {
	var b strings.Builder
	row := func(label string, lv catalog.Level) {
		fmt.Fprintf(&b, "%s %s   ", labelStyle.Render(label), levelStyle(string(lv)).Render(string(lv)))
	}
	row(a.tr("liquidity", "流動性"), in.Liquidity)
	row(a.tr("market", "市場"), in.MarketRisk)
	row(a.tr("issuer", "発行体"), in.IssuerRisk)
	if in.Duration != "" {
		b.WriteString("\n" + labelStyle.Render(a.tr("duration ", "期間 ")) + in.Duration)
	}
	if c := a.text(in.Commentary); c != "" {
		b.WriteString("\n\n" + faintStyle.Render(c))
	}
	return b.String()
}

func (a *App) renderBrowse() string {
	if a.detailID != "" {
		return a.renderDetail(a.detailID)
	}

	var b strings.Builder
	b.WriteString(a.renderFilterBar() + "\n\n")

	if len(a.filtered) == 0 {
		b.WriteString(faintStyle.Render(a.tr("No assets match.", "該当するアセットがありません。")))
		if a.suggestion != "" {
			b.WriteString("\n" + a.tr("Did you mean: ", "もしかして：") + cursorStyle.Render(a.suggestion))
		}
		return b.String()
	}

	for i, asset := range a.filtered {
		prefix := "  "
		if i == a.browseCursor {
			prefix = cursorStyle.Render("> ")
		}
		like := " "
		if a.stores.Likes.Liked(asset.ID) {
			like = likeStyle.Render("♥")
		}
		fmt.Fprintf(&b, "%s%s %-34s %12s  %s\n",
			prefix, like, a.text(asset.Name), priceStyle.Render(formatYen(asset.PriceYen)), a.renderChange(asset))
	}
	fmt.Fprintf(&b, "\n%s", faintStyle.Render(fmt.Sprintf(a.tr("%d assets", "%d件"), len(a.filtered))))
	return b.String()
}

func (a *App) renderFilterBar() string {
	var query string
	if a.searching {
		query = a.searchInput.View()
	} else if a.spec.Query != "" {
		query = cursorStyle.Render(a.spec.Query)
	} else {
		query = faintStyle.Render(a.tr("(all)", "（すべて）"))
	}
	cat := "all"
	if a.spec.Category != "" {
		cat = string(a.spec.Category)
	}
	return fmt.Sprintf("%s %s   %s %s   %s %s   %s %s",
		labelStyle.Render(a.tr("search", "検索")), query,
		labelStyle.Render(a.tr("category", "種別")), cat,
		labelStyle.Render(a.tr("price", "価格")), a.spec.Price.String(),
		labelStyle.Render(a.tr("sort", "並び順")), a.spec.Sort.String())
}

func (a *App) renderLikes() string {
	if a.detailID != "" {
		return a.renderDetail(a.detailID)
	}
	liked := a.likedAssets()
	if len(liked) == 0 {
		return faintStyle.Render(a.tr(
			"Nothing liked yet. Swipe right in Discover to add assets here.",
			"お気に入りはまだありません。発見タブで右にスワイプすると追加されます。",
		))
	}
	var b strings.Builder
	var total int
	for i, asset := range liked {
		prefix := "  "
		if i == a.likesCursor {
			prefix = cursorStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s %-34s %12s\n",
			prefix, likeStyle.Render("♥"), a.text(asset.Name), priceStyle.Render(formatYen(asset.PriceYen)))
		total += asset.PriceYen
	}
	fmt.Fprintf(&b, "\n%s %s",
		labelStyle.Render(a.tr("wishlist value", "合計")), priceStyle.Render(formatYen(total)))
	return b.String()
}

func (a *App) renderPortfolio() string {
	report := portfolio.Build(a.cat, a.cat.Balances())
	if len(report.Holdings) == 0 {
		return faintStyle.Render(a.tr("No holdings.", "保有資産はありません。"))
	}
	var b strings.Builder
	b.WriteString(labelStyle.Render(a.tr("Total value", "評価額合計")) + " ")
	b.WriteString(priceStyle.Render(formatYen(report.TotalYen)))
	b.WriteString("  " + a.renderYenChange(report.TotalChange) + "\n\n")
	for _, h := range report.Holdings {
		fmt.Fprintf(&b, "  %-30s %4d %s %12s  %s\n",
			a.text(h.Asset.Name), h.Units, faintStyle.Render(a.text(h.Asset.UnitLabel)),
			priceStyle.Render(formatYen(h.ValueYen)), a.renderYenChange(h.ChangeYen))
	}
	b.WriteString("\n" + faintStyle.Render(a.tr(
		"Demo balances. Market movement is simulated.",
		"デモ残高です。値動きはシミュレーションです。",
	)))
	return b.String()
}

func (a *App) renderYenChange(yen int) string {
	if yen < 0 {
		return downStyle.Render("-" + formatYen(-yen))
	}
	return upStyle.Render("+" + formatYen(yen))
}

func (a *App) renderSettings() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.tr("Settings", "設定")) + "\n\n")

	locale := a.tr("English", "日本語")
	fmt.Fprintf(&b, "  %s %s  %s\n",
		labelStyle.Render(a.tr("language", "言語")), locale, faintStyle.Render("l"))
	sidebar := a.tr("hidden", "非表示")
	if a.stores.Sidebar.Open() {
		sidebar = a.tr("shown", "表示")
	}
	fmt.Fprintf(&b, "  %s %s  %s\n",
		labelStyle.Render(a.tr("sidebar", "サイドバー")), sidebar, faintStyle.Render("b"))
	fmt.Fprintf(&b, "  %s  %s\n\n",
		labelStyle.Render(a.tr("save language as default", "言語を既定として保存")), faintStyle.Render("S"))

	if u, ok := a.stores.Session.Current(); ok {
		fmt.Fprintf(&b, "  %s %s <%s>\n", labelStyle.Render(a.tr("account", "アカウント")), u.Name, u.Email)
		fmt.Fprintf(&b, "  %s  %s\n", labelStyle.Render(a.tr("sign out", "サインアウト")), faintStyle.Render("x"))
	} else {
		fmt.Fprintf(&b, "  %s  %s\n", labelStyle.Render(a.tr("sign in with email", "メールでサインイン")), faintStyle.Render("e"))
		fmt.Fprintf(&b, "  %s  %s\n", labelStyle.Render(a.tr("sign in with Google", "Googleでサインイン")), faintStyle.Render("g"))
	}
	return b.String()
}

func (a *App) renderDetail(id string) string {
	asset, ok := a.cat.AssetByID(id)
	if !ok {
		return faintStyle.Render(a.tr("Asset not found.", "アセットが見つかりません。"))
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.text(asset.Name)) + "\n")
	if p, ok := a.cat.ProjectByID(asset.ProjectID); ok {
		b.WriteString(labelStyle.Render(a.text(p.Name)) + "\n\n")
		if d := a.text(p.Description); d != "" {
			b.WriteString(d + "\n\n")
		}
	}
	b.WriteString(priceStyle.Render(formatYen(asset.PriceYen)))
	b.WriteString(faintStyle.Render(" / " + a.text(asset.UnitLabel)))
	b.WriteString("  " + a.renderChange(asset) + "\n\n")
	b.WriteString(a.renderSoldBar(asset) + "\n\n")
	b.WriteString(a.renderInsights(asset.Insights))
	if len(asset.Insights.SuitableFor) > 0 {
		b.WriteString("\n\n" + labelStyle.Render(a.tr("Suitable for", "こんな方に")) + "\n")
		for _, s := range asset.Insights.SuitableFor {
			b.WriteString("  · " + a.text(s) + "\n")
		}
	}
	if asset.PurchaseURL != "" {
		b.WriteString("\n" + labelStyle.Render(a.tr("Purchase", "購入")) + " " + urlStyle.Render(asset.PurchaseURL))
	}
	return cardStyle.Render(b.String()) + "\n" + faintStyle.Render(a.tr("esc to close", "escで閉じる"))
}

func (a *App) renderLoginModal() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.tr("Sign in", "サインイン")) + "\n\n")
	b.WriteString(labelStyle.Render(a.tr("email", "メール")) + "\n")
	b.WriteString(a.emailInput.View() + "\n\n")
	b.WriteString(labelStyle.Render(a.tr("password", "パスワード")) + "\n")
	b.WriteString(a.passwordInput.View() + "\n\n")
	if a.loggingIn {
		b.WriteString(statusStyle.Render(a.tr("Signing in...", "サインイン中...")))
	} else {
		b.WriteString(faintStyle.Render(a.tr("enter submit · tab switch · esc cancel", "enter 送信 · tab 切替 · esc 閉じる")))
	}
	return cardStyle.Render(b.String())
}

// formatYen renders integer yen with comma grouping, e.g. ¥120,000.
func formatYen(yen int) string {
	sign := ""
	if yen < 0 {
		sign = "-"
		yen = -yen
	}
	s := fmt.Sprintf("%d", yen)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return sign + "¥" + strings.Join(parts, ",")
}
