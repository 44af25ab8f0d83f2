// Package game holds the data model of the numbers game: the hand of
// numbers, search states, moves and the generator of legal moves.
package game

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HandSize is the number of distinct numbers a player draws.
const HandSize = 6

// Hand is an immutable puzzle instance: six distinct numbers and a goal.
// The zero value is not a valid hand; use NewHand.
type Hand struct {
	numbers [HandSize]int
	goal    int
}

// NewHand validates numbers and goal and returns the resulting Hand.
// It returns an error wrapping ErrInvalidHand if there are not exactly
// six numbers, if a number is negative or if two numbers are equal.
func NewHand(numbers []int, goal int) (Hand, error) {
	var h Hand
	if len(numbers) != HandSize {
		return h, &InvalidHandError{Reason: fmt.Sprintf("expected %d numbers, got %d", HandSize, len(numbers))}
	}
	for i, n := range numbers {
		if n < 0 {
			return h, &InvalidHandError{Reason: fmt.Sprintf("number %d is negative", n)}
		}
		for j := 0; j < i; j++ {
			if numbers[j] == n {
				return h, &InvalidHandError{Reason: fmt.Sprintf("number %d appears more than once", n)}
			}
		}
		h.numbers[i] = n
	}
	h.goal = goal
	return h, nil
}

// MustHand is like NewHand but panics on an invalid hand.
func MustHand(numbers []int, goal int) Hand {
	h, err := NewHand(numbers, goal)
	if err != nil {
		panic(err)
	}
	return h
}

// Number returns the original number at index i.
func (h Hand) Number(i int) int { return h.numbers[i] }

// Numbers returns a copy of the six numbers in their original order.
func (h Hand) Numbers() []int {
	out := make([]int, HandSize)
	copy(out, h.numbers[:])
	return out
}

// Goal returns the value the player aims for.
func (h Hand) Goal() int { return h.goal }

// Distance returns |value - goal|, saturating at math.MaxInt when the
// difference does not fit in an int. It is never negative.
func (h Hand) Distance(value int) int {
	d := value - h.goal
	if value < h.goal {
		d = h.goal - value
	}
	if d < 0 {
		return math.MaxInt
	}
	return d
}

func (h Hand) String() string {
	parts := make([]string, HandSize)
	for i, n := range h.numbers {
		parts[i] = strconv.Itoa(n)
	}
	return fmt.Sprintf("[%s] -> %d", strings.Join(parts, " "), h.goal)
}
