package theme

type Theme interface {
	RenderNote(lane int) string
	RenderHitField(lane int) string
	RenderJudgement(index int, name string) string
}
