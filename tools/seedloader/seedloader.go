// seedloader loads a realistic demo dataset so the dashboard works
// out of the box without provider credentials. The scenario is a
// late-cycle expansion with rising rates: defensive sectors favored,
// cyclicals under pressure.
package main

import (
	"flag"

	"github.com/alphaoracle/alphaoracle/models"
	"github.com/alphaoracle/alphaoracle/models/enum"
	"github.com/alphaoracle/alphaoracle/utils/date"
	"github.com/alphaoracle/alphaoracle/utils/db"
	"github.com/alphaoracle/alphaoracle/utils/env"
	"github.com/alphaoracle/alphaoracle/utils/initializer"
	"github.com/alphaoracle/alphaoracle/utils/log"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

func init() {
	env.RegisterDefault("PGDATABASE", "alphaoracle")
	env.RegisterDefault("PGHOST", "127.0.0.1")
	env.RegisterDefault("PGUSER", "postgres")
	env.RegisterDefault("PGPASSWORD", "oracle")

	initializer.Initialize()

	flag.Parse()
}

func main() {
	tx := db.Begin()

	sectorIDs := map[string]string{}

	for _, s := range sectors() {
		if err := tx.Create(s).Error; err != nil {
			tx.Rollback()
			log.Fatal("failed to seed sector", "name", s.Name, "error", err)
		}
		sectorIDs[s.Name] = s.ID
	}

	for _, r := range recommendations() {
		id, ok := sectorIDs[r.SectorName()]
		if !ok {
			tx.Rollback()
			log.Fatal("recommendation references unseeded sector",
				"ticker", r.Ticker, "sector", r.SectorName())
		}
		r.SectorID = id
		r.Sector = nil

		if err := tx.Create(r).Error; err != nil {
			tx.Rollback()
			log.Fatal("failed to seed recommendation", "ticker", r.Ticker, "error", err)
		}
	}

	for _, g := range risks() {
		if err := tx.Create(g).Error; err != nil {
			tx.Rollback()
			log.Fatal("failed to seed geopolitical risk", "event", g.EventName, "error", err)
		}
	}

	for _, e := range indicators() {
		if err := tx.Create(e).Error; err != nil {
			tx.Rollback()
			log.Fatal("failed to seed indicator", "name", e.IndicatorName, "error", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		log.Fatal("failed to commit seed data", "error", err)
	}

	db.DB().Close()
	log.Info("demo data loaded")
}

func sectors() []*models.Sector {
	return []*models.Sector{
		{
			Name:            "Healthcare",
			ConvictionScore: 8.5,
			Trend:           enum.TrendImproving,
			CyclePhase:      "peak",
			Tailwinds: pq.StringArray{
				"Aging demographics driving demand",
				"GLP-1 drugs revolution",
				"Strong pricing power",
				"Defensive characteristics in late cycle",
			},
			Headwinds: pq.StringArray{
				"Regulatory scrutiny on drug pricing",
				"Medicare negotiation pressure",
			},
			Thesis: "Ideal late-cycle positioning: secular demographic growth with defensive protection in slowdowns. GLP-1 drugs are a multi-hundred billion dollar opportunity.",
		},
		{
			Name:            "Consumer Staples",
			ConvictionScore: 7.8,
			Trend:           enum.TrendStable,
			CyclePhase:      "peak",
			Tailwinds: pq.StringArray{
				"Pricing power in inflationary environment",
				"Stable demand regardless of economy",
				"Strong cash flows and dividends",
			},
			Headwinds: pq.StringArray{
				"Input cost inflation pressuring margins",
				"Private label competition",
			},
			Thesis: "Staples offer protection as the cycle matures. Demonstrated pricing power to pass through inflation; high dividend yields attractive as rates peak.",
		},
		{
			Name:            "Energy",
			ConvictionScore: 7.5,
			Trend:           enum.TrendImproving,
			CyclePhase:      "peak",
			Tailwinds: pq.StringArray{
				"Underinvestment in oil supply",
				"OPEC+ supply discipline",
				"Strong free cash flow and capital returns",
				"Inflation hedge characteristics",
			},
			Headwinds: pq.StringArray{
				"Demand slowdown if recession hits",
				"Energy transition long-term pressure",
			},
			Thesis: "Supply constraints and geopolitical tension support prices. Strong cash generation enables large buybacks; the best late-cycle inflation hedge.",
		},
		{
			Name:            "Utilities",
			ConvictionScore: 7.2,
			Trend:           enum.TrendStable,
			CyclePhase:      "contraction",
			Tailwinds: pq.StringArray{
				"Renewable energy transition spending",
				"Stable regulated cash flows",
				"High dividend yields",
			},
			Headwinds: pq.StringArray{
				"High interest rate sensitivity",
				"Capital intensive growth",
			},
			Thesis: "Rate headwinds against defensive demand. Renewable capex provides growth; wait for rate stabilization before overweighting.",
		},
		{
			Name:            "Technology",
			ConvictionScore: 6.8,
			Trend:           enum.TrendDeclining,
			CyclePhase:      "expansion",
			Tailwinds: pq.StringArray{
				"AI adoption accelerating across industries",
				"Cloud migration still early innings",
				"Strong balance sheets and cash generation",
			},
			Headwinds: pq.StringArray{
				"High valuations vulnerable to rising rates",
				"Antitrust regulatory pressure",
				"China geopolitical tensions",
			},
			Thesis: "Leadership remains strong with AI tailwinds but valuations are stretched. Selective exposure to AI beneficiaries warranted; trim mega-cap overweight.",
		},
		{
			Name:            "Communication Services",
			ConvictionScore: 6.2,
			Trend:           enum.TrendStable,
			CyclePhase:      "expansion",
			Tailwinds: pq.StringArray{
				"Digital ad market still growing",
				"AI improving ad targeting and content",
			},
			Headwinds: pq.StringArray{
				"Advertising spending slowing",
				"Regulatory scrutiny intensifying",
			},
			Thesis: "Mixed picture: digital advertising slowing but AI improves the economics. Regulatory overhang persists.",
		},
		{
			Name:            "Industrials",
			ConvictionScore: 6.0,
			Trend:           enum.TrendDeclining,
			CyclePhase:      "expansion",
			Tailwinds: pq.StringArray{
				"Infrastructure spending from government bills",
				"Aerospace recovery continues",
				"Reshoring and supply chain reconfiguration",
			},
			Headwinds: pq.StringArray{
				"Slowing global PMIs",
				"Destocking cycle",
				"China slowdown impact",
			},
			Thesis: "Cyclical slowdown ahead, partially offset by infrastructure and aerospace. Quality names with pricing power preferred; underweight overall.",
		},
		{
			Name:            "Financials",
			ConvictionScore: 5.8,
			Trend:           enum.TrendStable,
			CyclePhase:      "expansion",
			Tailwinds: pq.StringArray{
				"Net interest margin expansion from rates",
				"Capital return to shareholders",
			},
			Headwinds: pq.StringArray{
				"Regional bank stress from rate shock",
				"Commercial real estate exposure",
				"Credit quality deterioration ahead",
			},
			Thesis: "Benefiting from the rate rise but credit concerns are mounting. Stay with the highest quality banks and payment processors with no credit risk.",
		},
		{
			Name:            "Consumer Discretionary",
			ConvictionScore: 5.5,
			Trend:           enum.TrendDeclining,
			CyclePhase:      "expansion",
			Tailwinds: pq.StringArray{
				"Pent-up demand in autos",
				"Experiences and travel still strong",
			},
			Headwinds: pq.StringArray{
				"Consumer spending slowing under rate pressure",
				"Trade-down behavior emerging",
				"Weak housing market",
			},
			Thesis: "Significant late-cycle headwinds as higher rates pressure leveraged consumers. Selectively own market share gainers.",
		},
		{
			Name:            "Materials",
			ConvictionScore: 5.2,
			Trend:           enum.TrendDeclining,
			CyclePhase:      "expansion",
			Tailwinds: pq.StringArray{
				"Supply discipline in chemicals",
				"Green transition metal demand",
			},
			Headwinds: pq.StringArray{
				"China slowdown hurting demand",
				"Inventory destocking",
				"Weak construction activity",
			},
			Thesis: "Suffering from China weakness and destocking. Avoid broad exposure; selective positioning in industrial gases and precious metals as a recession hedge.",
		},
		{
			Name:            "Real Estate",
			ConvictionScore: 4.8,
			Trend:           enum.TrendDeclining,
			CyclePhase:      "expansion",
			Tailwinds: pq.StringArray{
				"Data center demand from AI",
				"Industrial logistics strength from e-commerce",
			},
			Headwinds: pq.StringArray{
				"High interest rate sensitivity",
				"Office sector distress",
				"Valuation compression from higher rates",
			},
			Thesis: "Under severe pressure from the rate spike. Only own specialized REITs with secular tailwinds: data centers, logistics, towers.",
		},
	}
}

func rec(ticker, company, sector string, strategy enum.Strategy, conviction float64,
	current, target string, upside float64, risk enum.RiskLevel, thesis string,
	catalysts, riskList []string, metrics models.ValuationMetrics) *models.Recommendation {

	return &models.Recommendation{
		Ticker:           ticker,
		CompanyName:      company,
		Sector:           &models.Sector{Name: sector},
		Strategy:         strategy,
		ConvictionScore:  conviction,
		CurrentPrice:     decimal.RequireFromString(current),
		TargetPrice:      decimal.RequireFromString(target),
		UpsidePercent:    upside,
		RiskLevel:        risk,
		Thesis:           thesis,
		Catalysts:        pq.StringArray(catalysts),
		Risks:            pq.StringArray(riskList),
		ValuationMetrics: metrics,
	}
}

func recommendations() []*models.Recommendation {
	return []*models.Recommendation{
		rec("UNH", "UnitedHealth Group", "Healthcare", enum.Defensive, 9.2,
			"528.40", "620.00", 17.3, enum.RiskLow,
			"Highest quality healthcare name with unmatched scale. Optum provides above-market growth; late-cycle defensive positioning essential.",
			[]string{"Aging demographics", "Optum growth", "Pricing power", "Defensive characteristics"},
			[]string{"Regulatory scrutiny", "Medicare Advantage rate pressure"},
			models.ValuationMetrics{"pe": 24.5, "peg": 1.8, "dividend_yield": 1.4}),
		rec("LLY", "Eli Lilly", "Healthcare", enum.Growth, 9.0,
			"568.25", "700.00", 23.2, enum.RiskMedium,
			"Two massive franchises: GLP-1 obesity drugs addressing a $100B+ market and Alzheimer's. The obesity epidemic ensures decades of growth.",
			[]string{"GLP-1 obesity drugs mega-opportunity", "Alzheimer's drug approval", "Pipeline strength", "Pricing power"},
			[]string{"Elevated valuation", "Incretin class competition intensifying"},
			models.ValuationMetrics{"pe": 88.4, "peg": 2.1, "dividend_yield": 0.7}),
		rec("XOM", "Exxon Mobil", "Energy", enum.Value, 8.8,
			"102.35", "125.00", 22.1, enum.RiskMedium,
			"Benefits from supply constraints and OPEC discipline. Massive free cash flow enables $17B+ annual buybacks; best-in-class integrated model.",
			[]string{"Underinvestment in supply", "Strong FCF generation", "Share buybacks", "Inflation hedge"},
			[]string{"Energy transition long-term", "Demand risk if recession"},
			models.ValuationMetrics{"pe": 9.8, "peg": 0.9, "dividend_yield": 3.5}),
		rec("MSFT", "Microsoft", "Technology", enum.Growth, 8.5,
			"375.80", "430.00", 14.4, enum.RiskMedium,
			"Best positioned for the AI revolution through the OpenAI partnership. Copilot adds a new revenue stream; quality compounder.",
			[]string{"AI leadership with OpenAI", "Copilot monetization", "Cloud secular growth", "Enterprise moat"},
			[]string{"High valuation", "Rate sensitivity", "Slower Azure growth"},
			models.ValuationMetrics{"pe": 32.5, "peg": 2.2, "dividend_yield": 0.9}),
		rec("JPM", "JPMorgan Chase", "Financials", enum.Value, 8.3,
			"168.50", "195.00", 15.7, enum.RiskMedium,
			"The gold standard in banking. Fortress balance sheet survived the regional bank crisis; credit concerns overdone with adequate reserves.",
			[]string{"NIM expansion from rates", "Market share gains", "Fortress balance sheet"},
			[]string{"Credit deterioration ahead", "CRE exposure concerns"},
			models.ValuationMetrics{"pe": 11.2, "peg": 1.8, "dividend_yield": 2.6}),
		rec("NVDA", "NVIDIA", "Technology", enum.Growth, 8.2,
			"735.50", "850.00", 15.6, enum.RiskHigh,
			"The pick-and-shovel play on the AI revolution. Data center GPU demand insatiable; the CUDA software layer creates a moat.",
			[]string{"AI infrastructure buildout", "Data center dominance", "Software monetization", "Pricing power"},
			[]string{"Extreme valuation", "Competition emerging", "China restrictions"},
			models.ValuationMetrics{"pe": 65.2, "peg": 1.9}),
		rec("V", "Visa", "Financials", enum.Growth, 8.1,
			"268.40", "305.00", 13.6, enum.RiskLow,
			"Quality compounder with no credit risk. The secular shift to digital payments continues with a large international opportunity.",
			[]string{"Digital payments secular growth", "No credit risk", "International growth", "Cash displacement continues"},
			[]string{"Consumer spending slowdown", "Interchange fee regulation"},
			models.ValuationMetrics{"pe": 31.5, "peg": 2.5, "dividend_yield": 0.8}),
		rec("PG", "Procter & Gamble", "Consumer Staples", enum.Defensive, 8.0,
			"158.75", "175.00", 10.2, enum.RiskLow,
			"Epitomizes late-cycle defensive positioning with a proven ability to pass through inflation and a 67-year dividend growth streak.",
			[]string{"Pricing power", "Defensive demand", "Strong brands", "Dividend aristocrat"},
			[]string{"Slowing organic growth", "FX headwinds", "Private label competition"},
			models.ValuationMetrics{"pe": 25.8, "peg": 3.5, "dividend_yield": 2.5}),
		rec("CVX", "Chevron", "Energy", enum.Value, 8.0,
			"148.90", "172.00", 15.5, enum.RiskMedium,
			"Combines value, income, and growth. The Hess acquisition adds Guyana production; LNG projects provide growth beyond 2025.",
			[]string{"Hess acquisition adds growth", "LNG expansion", "Buybacks", "High dividend"},
			[]string{"Permian growth slowing", "Renewable transition"},
			models.ValuationMetrics{"pe": 10.5, "peg": 1.1, "dividend_yield": 3.9}),
		rec("JNJ", "Johnson & Johnson", "Healthcare", enum.Defensive, 7.8,
			"158.20", "180.00", 13.8, enum.RiskLow,
			"Post-consumer-spin transformation creating value. MedTech accelerating; 3.1% yield with a 61-year increase streak.",
			[]string{"MedTech growth acceleration", "Pharma pipeline", "Dividend aristocrat"},
			[]string{"Talc litigation overhang", "Pharma patent cliffs"},
			models.ValuationMetrics{"pe": 15.2, "peg": 2.8, "dividend_yield": 3.1}),
		rec("WMT", "Walmart", "Consumer Staples", enum.Defensive, 7.7,
			"165.80", "185.00", 11.6, enum.RiskLow,
			"Wins in late cycle as consumers trade down to value. E-commerce finally profitable; high-margin advertising business emerging.",
			[]string{"Trade-down beneficiary", "E-commerce growth", "Advertising business scaling"},
			[]string{"Wage inflation", "Competition from Amazon", "Valuation stretched"},
			models.ValuationMetrics{"pe": 28.5, "peg": 2.4, "dividend_yield": 1.5}),
		rec("LIN", "Linde", "Materials", enum.Defensive, 7.6,
			"425.80", "475.00", 11.6, enum.RiskLow,
			"Highest quality materials name with industrial gas oligopoly pricing. Hydrogen infrastructure is a multi-decade opportunity.",
			[]string{"Hydrogen economy growth", "Semiconductor fab buildout", "Pricing power"},
			[]string{"Global industrial slowdown", "China weakness", "Energy costs"},
			models.ValuationMetrics{"pe": 28.5, "peg": 2.4, "dividend_yield": 1.4}),
		rec("META", "Meta Platforms", "Communication Services", enum.Contrarian, 7.5,
			"485.30", "550.00", 13.3, enum.RiskMedium,
			"The year of efficiency is delivering massive margin expansion. AI improving ad ROI; WhatsApp monetization in early innings.",
			[]string{"Efficiency gains driving margins", "Reels monetization", "AI improving ad targeting", "WhatsApp monetization starting"},
			[]string{"Ad spending cyclically weak", "Competition from TikTok", "Regulatory scrutiny"},
			models.ValuationMetrics{"pe": 28.5, "peg": 1.9}),
		rec("NEM", "Newmont", "Materials", enum.Contrarian, 7.3,
			"38.50", "48.00", 24.7, enum.RiskHigh,
			"Late-cycle recession hedge through gold exposure. Central banks accumulating; the Newcrest deal adds scale with a turnaround underway.",
			[]string{"Gold hedge against uncertainty", "Central bank buying", "Mining supply constrained", "Newcrest synergies"},
			[]string{"Operational challenges", "Cost inflation", "Newcrest integration risk"},
			models.ValuationMetrics{"pe": 45.2, "peg": 1.8, "dividend_yield": 2.8}),
		rec("GOOGL", "Alphabet", "Communication Services", enum.Contrarian, 7.0,
			"140.50", "150.00", 6.8, enum.RiskMedium,
			"The AI threat to search is likely overblown. Cloud accelerating; reasonable valuation but elevated regulatory risk.",
			[]string{"Search dominance", "Cloud growing", "AI integration", "Buybacks"},
			[]string{"Search ad slowdown", "AI threatening search moat", "Regulatory overhang"},
			models.ValuationMetrics{"pe": 25.2, "peg": 2.1}),
		rec("NEE", "NextEra Energy", "Utilities", enum.Defensive, 7.0,
			"58.20", "65.00", 11.7, enum.RiskLow,
			"Highest quality utility with renewable leadership and 10% rate base growth. Valuation premium compressed by higher rates.",
			[]string{"Renewable energy leader", "Rate base growth", "Data center demand"},
			[]string{"High rate sensitivity", "Elevated valuation for a utility"},
			models.ValuationMetrics{"pe": 18.5, "peg": 2.1, "dividend_yield": 3.2}),
		rec("AAPL", "Apple", "Technology", enum.Contrarian, 6.8,
			"185.50", "185.00", -0.3, enum.RiskMedium,
			"At fair value after a strong run. China deteriorating and services decelerating; massive cash return supportive but not enough to drive upside.",
			[]string{"Services high margin", "Installed base loyalty", "Vision Pro optionality"},
			[]string{"iPhone growth saturated", "China sales weakness", "High valuation"},
			models.ValuationMetrics{"pe": 29.8, "peg": 4.2, "dividend_yield": 0.5}),
		rec("PLD", "Prologis", "Real Estate", enum.Contrarian, 6.6,
			"118.50", "125.00", 5.5, enum.RiskMedium,
			"Best-in-class logistics REIT with e-commerce driving long-term demand, but the sector is getting hammered by rates.",
			[]string{"E-commerce secular growth", "Supply discipline", "High occupancy"},
			[]string{"Rate sensitivity", "Development yields compressed", "Slowing rent growth"},
			models.ValuationMetrics{"pe": 32.5, "peg": 4.2, "dividend_yield": 3.2}),
		rec("AMZN", "Amazon", "Consumer Discretionary", enum.Contrarian, 6.5,
			"155.20", "160.00", 3.1, enum.RiskMedium,
			"Cyclical headwinds in retail as the consumer weakens, but AWS remains the leader and advertising is a bright spot.",
			[]string{"AWS remains strong", "Advertising growing", "Prime loyalty", "Logistics efficiency gains"},
			[]string{"Retail margin pressure", "Consumer spending slowing", "Regulatory scrutiny"},
			models.ValuationMetrics{"pe": 52.5, "peg": 2.8}),
		rec("CAT", "Caterpillar", "Industrials", enum.Value, 6.4,
			"295.40", "295.00", -0.1, enum.RiskHigh,
			"At a cyclical peak with an industrial slowdown ahead. Infrastructure provides a partial offset; wait for the reset.",
			[]string{"Infrastructure spending", "Replacement cycle", "Services growth"},
			[]string{"Cyclical peak concerns", "China construction slowdown", "Dealer inventory destocking"},
			models.ValuationMetrics{"pe": 16.8, "peg": 2.8, "dividend_yield": 1.8}),
		rec("HD", "Home Depot", "Consumer Discretionary", enum.Value, 6.2,
			"328.50", "330.00", 0.5, enum.RiskMedium,
			"Cyclical headwinds from the housing slowdown. Repair and remodel more stable, and home equity supports spending, but fully valued.",
			[]string{"Home equity at highs", "Repair and remodel stable", "Pro customer steady"},
			[]string{"Housing market weakness", "Big-ticket discretionary pressure", "Mortgage rates hurting turnover"},
			models.ValuationMetrics{"pe": 21.5, "peg": 3.8, "dividend_yield": 2.4}),
	}
}

func risks() []*models.GeopoliticalRisk {
	return []*models.GeopoliticalRisk{
		{
			EventName: "China / Taiwan tensions",
			Severity:  enum.SeverityHigh,
			AffectedSectors: pq.StringArray{
				"Technology", "Materials", "Industrials", "Consumer Discretionary",
			},
			Description:      "Elevated tensions around Taiwan with increased military posturing. Conflict or blockade would disrupt global supply chains, especially semiconductors.",
			ImpactAssessment: "Reduce exposure to companies with heavy China revenue concentration. Favor domestic supply chains and nearshoring beneficiaries.",
		},
		{
			EventName: "Russia / Ukraine conflict",
			Severity:  enum.SeverityMedium,
			AffectedSectors: pq.StringArray{
				"Energy", "Materials", "Consumer Staples",
			},
			Description:      "Ongoing conflict with periodic escalation. Energy and grain markets remain disrupted; sanctions persist.",
			ImpactAssessment: "Energy prices volatile but elevated. Favor US energy independence plays; agricultural commodities supported.",
		},
		{
			EventName: "Middle East escalation risk",
			Severity:  enum.SeverityMedium,
			AffectedSectors: pq.StringArray{
				"Energy", "Industrials", "Materials",
			},
			Description:      "Regional conflict with risk of broader escalation and potential impacts to oil transit routes.",
			ImpactAssessment: "Oil price risk premium elevated. Favor energy companies with geographically diverse assets.",
		},
		{
			EventName: "US election year uncertainty",
			Severity:  enum.SeverityMedium,
			AffectedSectors: pq.StringArray{
				"Healthcare", "Financials", "Energy", "Communication Services",
			},
			Description:      "Potential for significant policy changes. Deficit and debt ceiling concerns resurfacing.",
			ImpactAssessment: "Healthcare faces drug pricing regulation risk; antitrust scrutiny of big tech. Favor bipartisan beneficiaries.",
		},
		{
			EventName: "Global trade fragmentation",
			Severity:  enum.SeverityMedium,
			AffectedSectors: pq.StringArray{
				"Industrials", "Technology", "Materials", "Consumer Discretionary",
			},
			Description:      "Friend-shoring and deglobalization trends with ongoing supply chain reconfiguration.",
			ImpactAssessment: "Nearshoring beneficiaries favored. Global exporters face challenges; localized supply chains preferred.",
		},
	}
}

func indicators() []*models.EconomicIndicator {
	today := date.Today()

	row := func(name string, value float64, unit, trend, impact string) *models.EconomicIndicator {
		return &models.EconomicIndicator{
			IndicatorName: name,
			Value:         value,
			Unit:          unit,
			Trend:         trend,
			Impact:        impact,
			DataDate:      today,
		}
	}

	return []*models.EconomicIndicator{
		row("GDP Growth Rate", 2.1, "%", "stable", "Neutral"),
		row("Unemployment Rate", 3.8, "%", "stable", "Neutral"),
		row("CPI (Inflation)", 3.7, "Index", "rising", "Negative"),
		row("Federal Funds Rate", 5.25, "%", "rising", "Negative"),
		row("10-Year Treasury Yield", 4.3, "%", "rising", "Negative"),
	}
}
