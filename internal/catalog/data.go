package catalog

// Static marketplace dataset compiled into the binary. There is no write
// path: the app is a browsing front end over mock offerings.

var defaultProjects = []Project{
	{
		ID:          "prj-kyoto-machiya",
		Name:        Text{EN: "Kyoto Machiya Renewal Fund", JA: "京町家再生ファンド"},
		Description: Text{EN: "Fractional stakes in restored machiya townhouses operated as guest lodging.", JA: "改修した京町家を宿泊施設として運営する小口投資。"},
		Color:       "#fab387",
		Icon:        "house",
		Category:    CategoryInvestment,
	},
	{
		ID:          "prj-niseko-lodge",
		Name:        Text{EN: "Niseko Alpine Lodge Club", JA: "ニセコ・アルパインロッジ倶楽部"},
		Description: Text{EN: "Seasonal membership in a ski-in lodge on the Hirafu slopes.", JA: "ヒラフ斜面のロッジに滞在できるシーズン会員権。"},
		Color:       "#89b4fa",
		Icon:        "mountain",
		Category:    CategoryMembership,
	},
	{
		ID:          "prj-sumo-archive",
		Name:        Text{EN: "Grand Sumo Digital Archive", JA: "大相撲デジタルアーカイブ"},
		Description: Text{EN: "Tokenized moments from historic basho, licensed from the archive.", JA: "歴史的な場所の名場面をトークン化したコレクション。"},
		Color:       "#cba6f7",
		Icon:        "trophy",
		Category:    CategoryNFT,
	},
	{
		ID:          "prj-omi-wagyu",
		Name:        Text{EN: "Omi Wagyu Farm Trail", JA: "近江牛ファームトレイル"},
		Description: Text{EN: "Farm-stay experiences with a share of the seasonal yield.", JA: "季節の収益分配付きファームステイ体験。"},
		Color:       "#a6e3a1",
		Icon:        "leaf",
		Category:    CategoryExperience,
	},
	{
		ID:          "prj-aomori-solar",
		Name:        Text{EN: "Aomori Solar Commons", JA: "青森ソーラーコモンズ"},
		Description: Text{EN: "Community solar panels with output-linked returns.", JA: "発電量に連動した収益の地域共同太陽光パネル。"},
		Color:       "#f9e2af",
		Icon:        "sun",
		Category:    CategoryInvestment,
	},
}

var defaultCategories = []Category{
	{
		ID:          "realestate",
		Name:        Text{EN: "Real Estate", JA: "不動産"},
		Description: Text{EN: "Income-producing property offerings.", JA: "収益不動産の小口化商品。"},
		Color:       "#fab387",
		Icon:        "building",
		AssetCount:  4,
	},
	{
		ID:          "carbon",
		Name:        Text{EN: "Carbon & Renewables", JA: "カーボン・再エネ"},
		Description: Text{EN: "Clean energy and offset-backed assets.", JA: "クリーンエネルギーとオフセット関連資産。"},
		Color:       "#a6e3a1",
		Icon:        "leaf",
		AssetCount:  3,
	},
	{
		ID:          "collectibles",
		Name:        Text{EN: "Collectibles", JA: "コレクティブル"},
		Description: Text{EN: "Digital and physical collectible assets.", JA: "デジタル・実物のコレクション資産。"},
		Color:       "#cba6f7",
		Icon:        "gem",
		AssetCount:  3,
	},
	{
		ID:          "hospitality",
		Name:        Text{EN: "Hospitality", JA: "ホスピタリティ"},
		Description: Text{EN: "Stays, memberships and experiences.", JA: "宿泊・会員権・体験型の資産。"},
		Color:       "#89b4fa",
		Icon:        "bed",
		AssetCount:  5,
	},
}

var defaultAssets = []Asset{
	{
		ID:          "ast-machiya-gion",
		Name:        Text{EN: "Gion Townhouse Share", JA: "祇園町家シェア"},
		ProjectID:   "prj-kyoto-machiya",
		CategoryID:  "realestate",
		PriceYen:    120000,
		UnitLabel:   Text{EN: "share", JA: "口"},
		Sold:        182,
		Available:   18,
		PurchaseURL: "https://market.example.jp/offerings/ast-machiya-gion",
		Insights: Insights{
			Duration:      "5y",
			Orientation:   "income",
			Liquidity:     LevelLow,
			MarketRisk:    LevelMedium,
			LiquidityRisk: LevelHigh,
			IssuerRisk:    LevelLow,
			Commentary:    Text{EN: "Steady occupancy; exit limited to the semiannual window.", JA: "稼働は安定。売却は半期ごとの窓口に限定。"},
			SuitableFor:   []Text{{EN: "Long-horizon savers", JA: "長期保有志向の方"}, {EN: "Kyoto enthusiasts", JA: "京都好きの方"}},
		},
	},
	{
		ID:          "ast-machiya-nishijin",
		Name:        Text{EN: "Nishijin Atelier Share", JA: "西陣アトリエシェア"},
		ProjectID:   "prj-kyoto-machiya",
		CategoryID:  "realestate",
		PriceYen:    80000,
		UnitLabel:   Text{EN: "share", JA: "口"},
		Sold:        95,
		Available:   105,
		PurchaseURL: "https://market.example.jp/offerings/ast-machiya-nishijin",
		Insights: Insights{
			Duration:      "5y",
			Orientation:   "income",
			Liquidity:     LevelLow,
			MarketRisk:    LevelMedium,
			LiquidityRisk: LevelHigh,
			IssuerRisk:    LevelLow,
			Commentary:    Text{EN: "Craft-studio tenancy signed through 2028.", JA: "工房テナントと2028年まで契約済み。"},
			SuitableFor:   []Text{{EN: "Income-focused holders", JA: "分配重視の方"}},
		},
	},
	{
		ID:          "ast-niseko-winter",
		Name:        Text{EN: "Winter Season Pass", JA: "冬季シーズンパス"},
		ProjectID:   "prj-niseko-lodge",
		CategoryID:  "hospitality",
		PriceYen:    550000,
		UnitLabel:   Text{EN: "membership", JA: "会員権"},
		Sold:        48,
		Available:   2,
		PurchaseURL: "https://market.example.jp/offerings/ast-niseko-winter",
		Insights: Insights{
			Duration:      "1y",
			Orientation:   "use",
			Liquidity:     LevelMedium,
			MarketRisk:    LevelLow,
			LiquidityRisk: LevelMedium,
			IssuerRisk:    LevelLow,
			Commentary:    Text{EN: "Nearly allocated; resale board is active in season.", JA: "残りわずか。シーズン中は転売掲示板が活発。"},
			SuitableFor:   []Text{{EN: "Frequent skiers", JA: "スキーによく行く方"}},
		},
	},
	{
		ID:          "ast-niseko-green",
		Name:        Text{EN: "Green Season Pass", JA: "グリーンシーズンパス"},
		ProjectID:   "prj-niseko-lodge",
		CategoryID:  "hospitality",
		PriceYen:    98000,
		UnitLabel:   Text{EN: "membership", JA: "会員権"},
		Sold:        21,
		Available:   29,
		PurchaseURL: "https://market.example.jp/offerings/ast-niseko-green",
		Insights: Insights{
			Duration:      "1y",
			Orientation:   "use",
			Liquidity:     LevelMedium,
			MarketRisk:    LevelLow,
			LiquidityRisk: LevelMedium,
			IssuerRisk:    LevelLow,
			Commentary:    Text{EN: "Quieter half of the year; hiking and onsen access.", JA: "閑散期。ハイキングと温泉の利用付き。"},
			SuitableFor:   []Text{{EN: "Families", JA: "ご家族連れ"}},
		},
	},
	{
		ID:          "ast-sumo-yokozuna",
		Name:        Text{EN: "Yokozuna Moment #7", JA: "横綱の一番 #7"},
		ProjectID:   "prj-sumo-archive",
		CategoryID:  "collectibles",
		PriceYen:    30000,
		UnitLabel:   Text{EN: "token", JA: "トークン"},
		Sold:        700,
		Available:   300,
		PurchaseURL: "https://market.example.jp/offerings/ast-sumo-yokozuna",
		Insights: Insights{
			Duration:      "open",
			Orientation:   "growth",
			Liquidity:     LevelHigh,
			MarketRisk:    LevelHigh,
			LiquidityRisk: LevelLow,
			IssuerRisk:    LevelMedium,
			Commentary:    Text{EN: "Most traded piece in the archive series.", JA: "シリーズ中で最も取引の多い一枚。"},
			SuitableFor:   []Text{{EN: "Sumo fans", JA: "相撲ファン"}, {EN: "Collectors", JA: "コレクター"}},
		},
	},
	{
		ID:          "ast-sumo-kinboshi",
		Name:        Text{EN: "Kinboshi Upset #3", JA: "金星の一番 #3"},
		ProjectID:   "prj-sumo-archive",
		CategoryID:  "collectibles",
		PriceYen:    8000,
		UnitLabel:   Text{EN: "token", JA: "トークン"},
		Sold:        1450,
		Available:   550,
		PurchaseURL: "https://market.example.jp/offerings/ast-sumo-kinboshi",
		Insights: Insights{
			Duration:      "open",
			Orientation:   "growth",
			Liquidity:     LevelHigh,
			MarketRisk:    LevelHigh,
			LiquidityRisk: LevelLow,
			IssuerRisk:    LevelMedium,
			Commentary:    Text{EN: "Entry-priced token with the largest mint.", JA: "発行数最大のエントリー価格トークン。"},
			SuitableFor:   []Text{{EN: "First-time buyers", JA: "はじめての方"}},
		},
	},
	{
		ID:          "ast-sumo-archive-box",
		Name:        Text{EN: "Archive Box 2026", JA: "アーカイブボックス2026"},
		ProjectID:   "prj-sumo-archive",
		CategoryID:  "collectibles",
		PriceYen:    45000,
		UnitLabel:   Text{EN: "box", JA: "箱"},
		Sold:        0,
		Available:   0,
		PurchaseURL: "https://market.example.jp/offerings/ast-sumo-archive-box",
		Insights: Insights{
			Duration:      "open",
			Orientation:   "growth",
			Liquidity:     LevelMedium,
			MarketRisk:    LevelHigh,
			LiquidityRisk: LevelMedium,
			IssuerRisk:    LevelMedium,
			Commentary:    Text{EN: "Announced for the autumn basho; allocation not yet open.", JA: "秋場所で発表予定。割当は未開始。"},
			SuitableFor:   []Text{{EN: "Collectors", JA: "コレクター"}},
		},
	},
	{
		ID:          "ast-wagyu-stay",
		Name:        Text{EN: "Harvest Stay Weekend", JA: "収穫ステイ週末プラン"},
		ProjectID:   "prj-omi-wagyu",
		CategoryID:  "hospitality",
		PriceYen:    68000,
		UnitLabel:   Text{EN: "stay", JA: "泊"},
		Sold:        34,
		Available:   6,
		PurchaseURL: "https://market.example.jp/offerings/ast-wagyu-stay",
		Insights: Insights{
			Duration:      "1y",
			Orientation:   "use",
			Liquidity:     LevelLow,
			MarketRisk:    LevelLow,
			LiquidityRisk: LevelHigh,
			IssuerRisk:    LevelLow,
			Commentary:    Text{EN: "Two nights at the farm plus a yield share at season end.", JA: "農場2泊とシーズン末の分配付き。"},
			SuitableFor:   []Text{{EN: "Food travelers", JA: "食の旅行好きの方"}},
		},
	},
	{
		ID:          "ast-wagyu-herdshare",
		Name:        Text{EN: "Herd Share", JA: "ハードシェア"},
		ProjectID:   "prj-omi-wagyu",
		CategoryID:  "carbon",
		PriceYen:    250000,
		UnitLabel:   Text{EN: "share", JA: "口"},
		Sold:        12,
		Available:   28,
		PurchaseURL: "https://market.example.jp/offerings/ast-wagyu-herdshare",
		Insights: Insights{
			Duration:      "3y",
			Orientation:   "income",
			Liquidity:     LevelLow,
			MarketRisk:    LevelMedium,
			LiquidityRisk: LevelHigh,
			IssuerRisk:    LevelMedium,
			Commentary:    Text{EN: "Pasture rotation is certified for soil-carbon credits.", JA: "放牧地は土壌カーボンクレジット認証済み。"},
			SuitableFor:   []Text{{EN: "Patient capital", JA: "長期資金の方"}},
		},
	},
	{
		ID:          "ast-solar-panel",
		Name:        Text{EN: "Panel Unit", JA: "パネルユニット"},
		ProjectID:   "prj-aomori-solar",
		CategoryID:  "carbon",
		PriceYen:    50000,
		UnitLabel:   Text{EN: "panel", JA: "枚"},
		Sold:        860,
		Available:   140,
		PurchaseURL: "https://market.example.jp/offerings/ast-solar-panel",
		Insights: Insights{
			Duration:      "10y",
			Orientation:   "income",
			Liquidity:     LevelMedium,
			MarketRisk:    LevelLow,
			LiquidityRisk: LevelMedium,
			IssuerRisk:    LevelLow,
			Commentary:    Text{EN: "Output-linked payout, settled quarterly.", JA: "発電量連動で四半期ごとに精算。"},
			SuitableFor:   []Text{{EN: "Income-focused holders", JA: "分配重視の方"}},
		},
	},
	{
		ID:          "ast-solar-array",
		Name:        Text{EN: "Array Block", JA: "アレイブロック"},
		ProjectID:   "prj-aomori-solar",
		CategoryID:  "carbon",
		PriceYen:    720000,
		UnitLabel:   Text{EN: "block", JA: "区画"},
		Sold:        9,
		Available:   11,
		PurchaseURL: "https://market.example.jp/offerings/ast-solar-array",
		Insights: Insights{
			Duration:      "10y",
			Orientation:   "income",
			Liquidity:     LevelLow,
			MarketRisk:    LevelLow,
			LiquidityRisk: LevelHigh,
			IssuerRisk:    LevelLow,
			Commentary:    Text{EN: "Whole-array block for larger allocations.", JA: "大口向けのアレイ単位区画。"},
			SuitableFor:   []Text{{EN: "Larger allocations", JA: "大口投資の方"}},
		},
	},
	{
		ID:          "ast-machiya-roji",
		Name:        Text{EN: "Roji Garden Annex", JA: "露地庭アネックス"},
		ProjectID:   "prj-kyoto-machiya",
		CategoryID:  "realestate",
		PriceYen:    9500,
		UnitLabel:   Text{EN: "share", JA: "口"},
		Sold:        2400,
		Available:   1600,
		PurchaseURL: "https://market.example.jp/offerings/ast-machiya-roji",
		Insights: Insights{
			Duration:      "5y",
			Orientation:   "income",
			Liquidity:     LevelMedium,
			MarketRisk:    LevelMedium,
			LiquidityRisk: LevelMedium,
			IssuerRisk:    LevelLow,
			Commentary:    Text{EN: "Smallest ticket in the fund; pooled annex revenue.", JA: "ファンド最小口。アネックス収益をプール分配。"},
			SuitableFor:   []Text{{EN: "First-time buyers", JA: "はじめての方"}},
		},
	},
}

// defaultBalances is the demo portfolio shown before any real custody
// integration exists.
var defaultBalances = []Balance{
	{AssetID: "ast-sumo-kinboshi", Units: 3},
	{AssetID: "ast-solar-panel", Units: 2},
	{AssetID: "ast-machiya-roji", Units: 10},
}
