package game

type Judgement struct {
	Window float64 // Distance from the hit line, in position units
	Points int64
	Name   string
}

// Judge finds the narrowest judgement window the distance falls
// inside. Outside every window it returns -1 and nil.
func Judge(distance float64, judgements []Judgement) (int, *Judgement) {
	for i := range judgements {
		if distance < judgements[i].Window {
			return i, &judgements[i]
		}
	}
	return -1, nil
}
