package feature

import (
	"strconv"
	"strings"
)

func checks(rules ...func(string) error) func(string) error {
	return func(v string) error {
		for _, rule := range rules {
			if err := rule(v); err != nil {
				return err
			}
		}
		return nil
	}
}

func required(msg string) func(string) error {
	return func(v string) error {
		if v == "" {
			return reject(msg)
		}
		return nil
	}
}

func confirmed(msg string) func(string) error {
	return func(v string) error {
		if v != "y" {
			return reject(msg)
		}
		return nil
	}
}

func webURL(msg string) func(string) error {
	return func(v string) error {
		if !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") {
			return reject(msg)
		}
		return nil
	}
}

func emailLike(msg string) func(string) error {
	return func(v string) error {
		if v == "" || !strings.Contains(v, "@") {
			return reject(msg)
		}
		return nil
	}
}

// ipv4Like only counts the dot-separated parts.
func ipv4Like(msg string) func(string) error {
	return func(v string) error {
		if v == "" || len(strings.Split(v, ".")) != 4 {
			return reject(msg)
		}
		return nil
	}
}

// choice accepts the canonical decimal spellings of lo..hi only, so "01"
// and "+1" are rejected.
func choice(lo, hi int, invalid error) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || strconv.Itoa(n) != v || n < lo || n > hi {
			return invalid
		}
		return nil
	}
}
