package spellabet_test

import (
	"fmt"
	"os"

	"spellout/spellabet"
)

func ExamplePhoneticConverter_Convert() {
	c := spellabet.New(spellabet.Nato)
	fmt.Println(c.Convert("Example123!"))

	// Output:
	// ECHO x-ray alfa mike papa lima echo One Two Tree Exclamation
}

func ExamplePhoneticConverter_NonceForm() {
	c := spellabet.Default().NonceForm(true)
	fmt.Println(c.Convert("Hello"))

	// Output:
	// 'H' as in HOTEL, 'e' as in echo, 'l' as in lima, 'l' as in lima, 'o' as in oscar
}

func ExamplePhoneticConverter_WithOverrides() {
	c := spellabet.Default()
	fmt.Println("BEFORE:", c.Convert("abcd"))

	c = c.WithOverrides(map[rune]string{'a': "Apple", 'B': "banana split"})
	fmt.Println("AFTER: ", c.Convert("abcd"))

	// Output:
	// BEFORE: alfa bravo charlie delta
	// AFTER:  apple bananasplit charlie delta
}

func ExamplePhoneticConverter_DumpAlphabet() {
	c := spellabet.New(spellabet.WesternUnion).WithOverrides(map[rune]string{
		'a': "alpha", 'b': "bravo", 'c': "charlie", 'd': "delta", 'e': "echo",
		'f': "fox", 'g': "golf", 'h': "hotel", 'i': "india", 'j': "juliet",
		'k': "kilo", 'l': "lima", 'm': "mike",
	})
	_ = c.DumpAlphabet(os.Stdout, false)

	// Output:
	// a -> Alpha
	// b -> Bravo
	// c -> Charlie
	// d -> Delta
	// e -> Echo
	// f -> Fox
	// g -> Golf
	// h -> Hotel
	// i -> India
	// j -> Juliet
	// k -> Kilo
	// l -> Lima
	// m -> Mike
	// n -> NewYork
	// o -> Ocean
	// p -> Peter
	// q -> Queen
	// r -> Roger
	// s -> Sugar
	// t -> Thomas
	// u -> Union
	// v -> Victor
	// w -> William
	// x -> X-ray
	// y -> Young
	// z -> Zero
}
