package game

import (
	"testing"
)

var judgeTests = map[float64]Judgement{
	0:     {Name: "Perfect", Points: 300},
	29.99: {Name: "Perfect", Points: 300},
	30:    {Name: "Good", Points: 100},
	62.5:  {Name: "Good", Points: 100},
	99.99: {Name: "Good", Points: 100},
	100:   {},
	240:   {},
}

func TestJudge(t *testing.T) {
	ladder := DefaultConfig().Judgements
	for distance, expected := range judgeTests {
		index, j := Judge(distance, ladder)
		if expected.Name == "" {
			if nil != j || index != -1 {
				t.Log("distance ", distance)
				t.Log("judgement", j)
				t.Fail()
			}
			continue
		}
		if nil == j || j.Name != expected.Name || j.Points != expected.Points {
			t.Log("distance ", distance)
			t.Log("judgement", j)
			t.Log("expected ", expected)
			t.Fail()
		}
	}
}

func TestJudgeEmptyLadder(t *testing.T) {
	if index, j := Judge(0, nil); nil != j || index != -1 {
		t.Errorf("empty ladder judged %v at %v", j, index)
	}
}
