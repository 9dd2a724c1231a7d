package main

import (
	"errors"
	"fmt"

	"github.com/bismuthsalamander/advent2023/almanac"
	"github.com/bismuthsalamander/advent2023/camelcards"
	"github.com/bismuthsalamander/advent2023/cosmic"
	"github.com/bismuthsalamander/advent2023/cubes"
	"github.com/bismuthsalamander/advent2023/gears"
	"github.com/bismuthsalamander/advent2023/mirage"
	"github.com/bismuthsalamander/advent2023/pipemaze"
	"github.com/bismuthsalamander/advent2023/races"
	"github.com/bismuthsalamander/advent2023/scratchcards"
	"github.com/bismuthsalamander/advent2023/springs"
	"github.com/bismuthsalamander/advent2023/trebuchet"
	"github.com/bismuthsalamander/advent2023/wasteland"
)

var ErrUnknownDay = errors.New("no solver registered for day")

type PartFunc func(lines []string) (int64, error)

type Day struct {
	Number int
	Title  string
	Parts  [2]PartFunc
	// Samples holds the worked example for each part; SampleWant is nil
	// where the example answer isn't known for the current settings.
	Samples    [2]string
	SampleWant [2]*int64
}

func answer(v int64) *int64 {
	return &v
}

func sameSample(s string) [2]string {
	return [2]string{s, s}
}

// Registry lists every solved day in order.
func Registry(cfg *Config) []Day {
	expansion := cfg.GalaxyExpansion
	expansionWant := answer(82000210)
	if expansion != cosmic.DefaultExpansion {
		expansionWant = nil
	}
	return []Day{
		{1, "Trebuchet?!", [2]PartFunc{trebuchet.Part1, trebuchet.Part2},
			[2]string{trebuchet.Sample, trebuchet.Sample2}, [2]*int64{answer(142), answer(281)}},
		{2, "Cube Conundrum", [2]PartFunc{cubes.Part1, cubes.Part2},
			sameSample(cubes.Sample), [2]*int64{answer(8), answer(2286)}},
		{3, "Gear Ratios", [2]PartFunc{gears.Part1, gears.Part2},
			sameSample(gears.Sample), [2]*int64{answer(4361), answer(467835)}},
		{4, "Scratchcards", [2]PartFunc{scratchcards.Part1, scratchcards.Part2},
			sameSample(scratchcards.Sample), [2]*int64{answer(13), answer(30)}},
		{5, "If You Give A Seed A Fertilizer", [2]PartFunc{almanac.Part1, almanac.Part2},
			sameSample(almanac.Sample), [2]*int64{answer(35), answer(46)}},
		{6, "Wait For It", [2]PartFunc{races.Part1, races.Part2},
			sameSample(races.Sample), [2]*int64{answer(288), answer(71503)}},
		{7, "Camel Cards", [2]PartFunc{camelcards.Part1, camelcards.Part2},
			sameSample(camelcards.Sample), [2]*int64{answer(6440), answer(5905)}},
		{8, "Haunted Wasteland", [2]PartFunc{wasteland.Part1, wasteland.Part2},
			[2]string{wasteland.Sample, wasteland.Sample2}, [2]*int64{answer(6), answer(6)}},
		{9, "Mirage Maintenance", [2]PartFunc{mirage.Part1, mirage.Part2},
			sameSample(mirage.Sample), [2]*int64{answer(114), answer(2)}},
		{10, "Pipe Maze", [2]PartFunc{pipemaze.Part1, pipemaze.Part2},
			[2]string{pipemaze.Sample, pipemaze.Sample2}, [2]*int64{answer(8), answer(4)}},
		{11, "Cosmic Expansion", [2]PartFunc{cosmic.Part1, cosmic.PartWithExpansion(expansion)},
			sameSample(cosmic.Sample), [2]*int64{answer(374), expansionWant}},
		{12, "Hot Springs", [2]PartFunc{springs.Part1, springs.Part2},
			sameSample(springs.Sample), [2]*int64{answer(21), answer(525152)}},
	}
}

func FindDay(days []Day, n int) (Day, error) {
	for _, d := range days {
		if d.Number == n {
			return d, nil
		}
	}
	return Day{}, fmt.Errorf("%w %d", ErrUnknownDay, n)
}
