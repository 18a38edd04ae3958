package element

// Person is the reference element. It is always handled as *Person, so two
// persons with equal fields are still different elements.
type Person struct {
	Name string
	Age  int
}

const defaultName = "TestMe"

// Range returns the integers start, start+1, ..., start+count-1.
func Range(start, count int) []int {
	if count <= 0 {
		return []int{}
	}
	res := make([]int, count)
	for i := range res {
		res[i] = start + i
	}
	return res
}

// People maps every age to a newly allocated person.
func People(ages []int) []*Person {
	res := make([]*Person, len(ages))
	for i, age := range ages {
		res[i] = &Person{Name: defaultName, Age: age}
	}
	return res
}

// Filter returns the elements of in for which keep is true, in order.
func Filter[T any](in []T, keep func(T) bool) []T {
	res := make([]T, 0, len(in)/2)
	for _, v := range in {
		if keep(v) {
			res = append(res, v)
		}
	}
	return res
}

func IsEven(n int) bool { return n%2 == 0 }

func HasEvenAge(p *Person) bool { return IsEven(p.Age) }
