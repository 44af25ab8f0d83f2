package search

import "math"

// bruteForce enumerates every chain of a hand without pruning or buffer
// reuse and returns the optimal plain and resilient scores. It shares no
// code with the engine so it can serve as a reference.
func bruteForce(nums [6]int, goal int) (plain, resilient Score, resilientOK bool) {
	plain = Score{Primary: math.MaxInt}
	resilient = Score{Primary: math.MaxInt}
	dist := func(v int) int {
		if v < goal {
			return goal - v
		}
		return v - goal
	}

	var rec func(val int, used uint, k int, op byte, other int, runningLeft bool)
	rec = func(val int, used uint, k int, op byte, other int, runningLeft bool) {
		if s := (Score{Primary: dist(val), Used: k}); s.Less(plain) {
			plain = s
		}
		if k >= 2 {
			worst := 0
			for a := 1; a <= 10; a++ {
				l, r := other, a
				if !runningLeft {
					l, r = a, other
				}
				var v int
				switch op {
				case '+':
					v = l + r
				case '-':
					v = l - r
				case '*':
					v = l * r
				case '/':
					v = l / r
				}
				if d := dist(v); d > worst {
					worst = d
				}
			}
			if s := (Score{Primary: worst, Used: k}); s.Less(resilient) {
				resilient = s
				resilientOK = true
			}
		}
		for i := 0; i < len(nums); i++ {
			if used&(1<<uint(i)) != 0 {
				continue
			}
			n := nums[i]
			next := used | 1<<uint(i)
			rec(val+n, next, k+1, '+', val, true)
			rec(val*n, next, k+1, '*', val, true)
			if val >= n {
				rec(val-n, next, k+1, '-', val, true)
			}
			if n >= val {
				rec(n-val, next, k+1, '-', val, false)
			}
			if n != 0 {
				rec(val/n, next, k+1, '/', val, true)
			}
			if val != 0 {
				rec(n/val, next, k+1, '/', val, false)
			}
		}
	}

	for i := range nums {
		rec(nums[i], 1<<uint(i), 1, 0, 0, false)
	}
	return plain, resilient, resilientOK
}
