// Package wasteland follows left/right instructions through the desert node
// network.
package wasteland

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/bismuthsalamander/advent2023/input"
)

var ErrUnreachable = errors.New("goal never reached")

type Network struct {
	Instructions string
	Nodes        map[string][2]string
}

var nodeRx = regexp.MustCompile(`^(\w+)\s*=\s*\((\w+),\s*(\w+)\)$`)

func Parse(lines []string) (*Network, error) {
	blocks := input.Blocks(lines)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, input.Errorf(0, "", "expected an instruction line, a blank line and the nodes")
	}
	n := Network{strings.TrimSpace(blocks[0][0]), make(map[string][2]string)}
	if n.Instructions == "" || strings.Trim(n.Instructions, "LR") != "" {
		return nil, input.Errorf(1, n.Instructions, "instructions may only contain L and R")
	}
	for idx, line := range blocks[1] {
		m := nodeRx.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return nil, input.Errorf(idx+3, line, "expected NODE = (LEFT, RIGHT)")
		}
		n.Nodes[m[1]] = [2]string{m[2], m[3]}
	}
	for from, to := range n.Nodes {
		for _, t := range to {
			if _, ok := n.Nodes[t]; !ok {
				return nil, input.Errorf(0, "", "node %s points at unknown node %s", from, t)
			}
		}
	}
	return &n, nil
}

// Steps walks from start until done returns true for the current node.
func (n *Network) Steps(start string, done func(string) bool) (int, error) {
	if _, ok := n.Nodes[start]; !ok {
		return 0, fmt.Errorf("start node %s: %w", start, ErrUnreachable)
	}
	node := start
	limit := len(n.Nodes)*len(n.Instructions) + 1
	for steps := 1; steps <= limit; steps++ {
		dir := 0
		if n.Instructions[(steps-1)%len(n.Instructions)] == 'R' {
			dir = 1
		}
		node = n.Nodes[node][dir]
		if done(node) {
			return steps, nil
		}
	}
	return 0, fmt.Errorf("from %s: %w", start, ErrUnreachable)
}

func Part1(lines []string) (int64, error) {
	n, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	steps, err := n.Steps("AAA", func(s string) bool { return s == "ZZZ" })
	return int64(steps), err
}

// Part2 assumes each ghost's path cycles back to its first Z node with the
// same period, so all ghosts line up at the least common multiple.
func Part2(lines []string) (int64, error) {
	n, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	periods := make([]int64, 0)
	for node := range n.Nodes {
		if !strings.HasSuffix(node, "A") {
			continue
		}
		steps, err := n.Steps(node, func(s string) bool { return strings.HasSuffix(s, "Z") })
		if err != nil {
			return 0, err
		}
		periods = append(periods, int64(steps))
	}
	if len(periods) == 0 {
		return 0, fmt.Errorf("no start nodes: %w", ErrUnreachable)
	}
	return input.LCM(periods...), nil
}

const Sample = `LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
`

const Sample2 = `LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
`
