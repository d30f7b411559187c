package postgres

type playerTableModel struct {
	ID             string  `db:"id"`
	Name           string  `db:"name"`
	Position       string  `db:"position"`
	Club           string  `db:"club"`
	Age            int     `db:"age"`
	StandardPoints float64 `db:"standard_points"`
	PPRPoints      float64 `db:"ppr_points"`
}
