package spellabet

type codeWord struct {
	char rune
	word string
}

var defaultDigitsAndSymbols = []codeWord{
	{'0', "Zero"},
	{'1', "One"},
	{'2', "Two"},
	{'3', "Three"},
	{'4', "Four"},
	{'5', "Five"},
	{'6', "Six"},
	{'7', "Seven"},
	{'8', "Eight"},
	{'9', "Nine"},
	{' ', "Space"},
	{'!', "Exclamation"},
	{'"', "DoubleQuote"},
	{'#', "Hash"},
	{'$', "Dollars"},
	{'%', "Percent"},
	{'&', "Ampersand"},
	{'\'', "Quote"},
	{'(', "LeftParens"},
	{')', "RightParens"},
	{'*', "Asterisk"},
	{'+', "Plus"},
	{',', "Comma"},
	{'-', "Dash"},
	{'.', "Period"},
	{'/', "ForeSlash"},
	{':', "Colon"},
	{';', "SemiColon"},
	{'<', "LessThan"},
	{'=', "Equals"},
	{'>', "GreaterThan"},
	{'?', "Question"},
	{'@', "At"},
	{'[', "LeftBracket"},
	{'\\', "BackSlash"},
	{']', "RightBracket"},
	{'^', "Caret"},
	{'_', "Underscore"},
	{'`', "Backtick"},
	{'{', "LeftBrace"},
	{'|', "Pipe"},
	{'}', "RightBrace"},
	{'~', "Tilde"},
}

// Joint Army/Navy, 1941.
var janAlphabet = []codeWord{
	{'a', "Able"},
	{'b', "Baker"},
	{'c', "Charlie"},
	{'d', "Dog"},
	{'e', "Easy"},
	{'f', "Fox"},
	{'g', "George"},
	{'h', "How"},
	{'i', "Item"},
	{'j', "Jig"},
	{'k', "King"},
	{'l', "Love"},
	{'m', "Mike"},
	{'n', "Nan"},
	{'o', "Oboe"},
	{'p', "Peter"},
	{'q', "Queen"},
	{'r', "Roger"},
	{'s', "Sugar"},
	{'t', "Tare"},
	{'u', "Uncle"},
	{'v', "Victor"},
	{'w', "William"},
	{'x', "X-ray"},
	{'y', "Yoke"},
	{'z', "Zebra"},
}

var lapdAlphabet = []codeWord{
	{'a', "Adam"},
	{'b', "Boy"},
	{'c', "Charles"},
	{'d', "David"},
	{'e', "Edward"},
	{'f', "Frank"},
	{'g', "George"},
	{'h', "Henry"},
	{'i', "Ida"},
	{'j', "John"},
	{'k', "King"},
	{'l', "Lincoln"},
	{'m', "Mary"},
	{'n', "Nora"},
	{'o', "Ocean"},
	{'p', "Paul"},
	{'q', "Queen"},
	{'r', "Robert"},
	{'s', "Sam"},
	{'t', "Tom"},
	{'u', "Union"},
	{'v', "Victor"},
	{'w', "William"},
	{'x', "X-ray"},
	{'y', "Young"},
	{'z', "Zebra"},
}

// ICAO/NATO spelling, including the radiotelephony digit pronunciations.
var natoAlphabet = []codeWord{
	{'a', "Alfa"},
	{'b', "Bravo"},
	{'c', "Charlie"},
	{'d', "Delta"},
	{'e', "Echo"},
	{'f', "Foxtrot"},
	{'g', "Golf"},
	{'h', "Hotel"},
	{'i', "India"},
	{'j', "Juliett"},
	{'k', "Kilo"},
	{'l', "Lima"},
	{'m', "Mike"},
	{'n', "November"},
	{'o', "Oscar"},
	{'p', "Papa"},
	{'q', "Quebec"},
	{'r', "Romeo"},
	{'s', "Sierra"},
	{'t', "Tango"},
	{'u', "Uniform"},
	{'v', "Victor"},
	{'w', "Whiskey"},
	{'x', "X-ray"},
	{'y', "Yankee"},
	{'z', "Zulu"},
	{'3', "Tree"},
	{'4', "Fower"},
	{'5', "Fife"},
	{'9', "Niner"},
}

var royalNavyAlphabet = []codeWord{
	{'a', "Apples"},
	{'b', "Butter"},
	{'c', "Charlie"},
	{'d', "Duff"},
	{'e', "Edward"},
	{'f', "Freddy"},
	{'g', "George"},
	{'h', "Harry"},
	{'i', "Ink"},
	{'j', "Johnnie"},
	{'k', "King"},
	{'l', "London"},
	{'m', "Monkey"},
	{'n', "Nuts"},
	{'o', "Orange"},
	{'p', "Pudding"},
	{'q', "Queenie"},
	{'r', "Robert"},
	{'s', "Sugar"},
	{'t', "Tommy"},
	{'u', "Uncle"},
	{'v', "Vinegar"},
	{'w', "Willie"},
	{'x', "Xerxes"},
	{'y', "Yellow"},
	{'z', "Zebra"},
}

var usFinancialAlphabet = []codeWord{
	{'a', "Adam"},
	{'b', "Bob"},
	{'c', "Carol"},
	{'d', "David"},
	{'e', "Eddie"},
	{'f', "Frank"},
	{'g', "George"},
	{'h', "Harry"},
	{'i', "Ike"},
	{'j', "Jim"},
	{'k', "Kenny"},
	{'l', "Larry"},
	{'m', "Mary"},
	{'n', "Nancy"},
	{'o', "Oliver"},
	{'p', "Peter"},
	{'q', "Quincy"},
	{'r', "Roger"},
	{'s', "Sam"},
	{'t', "Thomas"},
	{'u', "Uncle"},
	{'v', "Vincent"},
	{'w', "William"},
	{'x', "Xavier"},
	{'y', "Yogi"},
	{'z', "Zachary"},
}

var westernUnionAlphabet = []codeWord{
	{'a', "Adams"},
	{'b', "Boston"},
	{'c', "Chicago"},
	{'d', "Denver"},
	{'e', "Easy"},
	{'f', "Frank"},
	{'g', "George"},
	{'h', "Henry"},
	{'i', "Ida"},
	{'j', "John"},
	{'k', "King"},
	{'l', "Lincoln"},
	{'m', "Mary"},
	{'n', "NewYork"},
	{'o', "Ocean"},
	{'p', "Peter"},
	{'q', "Queen"},
	{'r', "Roger"},
	{'s', "Sugar"},
	{'t', "Thomas"},
	{'u', "Union"},
	{'v', "Victor"},
	{'w', "William"},
	{'x', "X-ray"},
	{'y', "Young"},
	{'z', "Zero"},
}
