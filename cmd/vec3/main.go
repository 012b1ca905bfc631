package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"vector3d/vector"
)

var (
	aFlag = flag.String("a", "1,0,0", "first vector as x,y,z")
	bFlag = flag.String("b", "0,1,0", "second vector as x,y,z")
)

func parseVec(s string) (vector.Vector3D, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return vector.Vector3D{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var c [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return vector.Vector3D{}, fmt.Errorf("component %d of %q: %v", i+1, s, err)
		}
		c[i] = f
	}
	return vector.New(c[0], c[1], c[2]), nil
}

func main() {
	flag.Parse()

	a, err := parseVec(*aFlag)
	if err != nil {
		log.Fatalf("-a: %v", err)
	}
	b, err := parseVec(*bFlag)
	if err != nil {
		log.Fatalf("-b: %v", err)
	}

	fmt.Printf("a = %s  |a| = %.4f\n", a, a.Magnitude())
	fmt.Printf("b = %s  |b| = %.4f\n", b, b.Magnitude())
	fmt.Printf("a + b   = %s\n", a.Add(b))
	fmt.Printf("a . b   = %.4f\n", a.DotProduct(b))

	if n, err := a.Normalize(); err != nil {
		fmt.Printf("unit(a) = undefined (%v)\n", err)
	} else {
		fmt.Printf("unit(a) = %s\n", n)
	}

	deg, err := a.AngleBetween(b)
	if err != nil {
		log.Fatalf("angle: %v", err)
	}
	fmt.Printf("angle   = %.2f deg\n", deg)
}
