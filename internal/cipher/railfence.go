package cipher

import (
	"sort"
	"strings"

	"github.com/verte-zerg/codeclub/internal/alphabet"
)

// RailFence applies the zig-zag transposition to the alphabet characters of
// text. Other characters keep their positions.
func RailFence(text string, rails int, decrypt bool, a alphabet.Alphabet) string {
	runes := []rune(strings.ToUpper(text))
	positions := make([]int, 0, len(runes))
	letters := make([]rune, 0, len(runes))
	for i, r := range runes {
		if a.Contains(r) {
			positions = append(positions, i)
			letters = append(letters, r)
		}
	}
	if rails < 2 || rails >= len(letters) {
		return string(runes)
	}

	order := railOrder(len(letters), rails)
	moved := make([]rune, len(letters))
	for j, k := range order {
		if decrypt {
			moved[k] = letters[j]
		} else {
			moved[j] = letters[k]
		}
	}
	for i, pos := range positions {
		runes[pos] = moved[i]
	}
	return string(runes)
}

// railOrder lists letter indexes in the order they are read off the fence.
func railOrder(n, rails int) []int {
	cycle := 2 * (rails - 1)
	railOf := make([]int, n)
	for k := range railOf {
		p := k % cycle
		if p >= rails {
			p = cycle - p
		}
		railOf[k] = p
	}
	order := make([]int, n)
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(i, j int) bool {
		return railOf[order[i]] < railOf[order[j]]
	})
	return order
}
