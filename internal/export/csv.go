package export

// CommanderRow is one line of commanders.csv.
type CommanderRow struct {
	ID            string   `csv:"id"`
	Name          string   `csv:"name"`
	ColorIdentity []string `csv:"color_identity"`
	DeckCount     int      `csv:"deck_count"`
	DeckCount30d  int      `csv:"deck_count_30d"`
	DeckCount90d  int      `csv:"deck_count_90d"`
	DeckCount180d int      `csv:"deck_count_180d"`
	BanStatus     string   `csv:"ban_status"`
}

// CardRow is one line of cards.csv.
type CardRow struct {
	Name       string  `csv:"name"`
	Slug       string  `csv:"slug"`
	TypeLine   string  `csv:"type_line"`
	TotalDecks int     `csv:"total_decks"`
	TotalPct   float64 `csv:"total_pct"`
	HasDetail  bool    `csv:"has_detail"`
}

// CommanderRows flattens the commander list for spreadsheet use.
func (s *Site) CommanderRows() []CommanderRow {
	rows := make([]CommanderRow, len(s.Commanders))
	for i, c := range s.Commanders {
		rows[i] = CommanderRow{
			ID:            c.ID,
			Name:          c.Name,
			ColorIdentity: c.ColorIdentity,
			DeckCount:     c.DeckCount,
			DeckCount30d:  c.DeckCount30d,
			DeckCount90d:  c.DeckCount90d,
			DeckCount180d: c.DeckCount180d,
			BanStatus:     string(c.BanStatus),
		}
	}
	return rows
}

// CardRows flattens the card list for spreadsheet use.
func (s *Site) CardRows() []CardRow {
	rows := make([]CardRow, len(s.Cards))
	for i, c := range s.Cards {
		rows[i] = CardRow{
			Name:       c.Name,
			Slug:       c.Slug,
			TypeLine:   c.TypeLine,
			TotalDecks: c.TotalDecks,
			TotalPct:   c.TotalPct,
			HasDetail:  c.HasDetail,
		}
	}
	return rows
}
