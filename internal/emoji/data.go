package emoji

var builtin = mustDataset([]Record{
	{Glyph: "😀", Description: "Grinning Face", Category: CategorySmileys, Aliases: []string{"grinning", "smile"}},
	{Glyph: "😃", Description: "Grinning Face with Big Eyes", Category: CategorySmileys, Aliases: []string{"smiley"}},
	{Glyph: "😄", Description: "Grinning Face with Smiling Eyes", Category: CategorySmileys, Aliases: []string{"smile", "laugh"}},
	{Glyph: "😁", Description: "Beaming Face with Smiling Eyes", Category: CategorySmileys, Aliases: []string{"grin"}},
	{Glyph: "😆", Description: "Grinning Squinting Face", Category: CategorySmileys, Aliases: []string{"laughing", "satisfied"}},
	{Glyph: "😅", Description: "Grinning Face with Sweat", Category: CategorySmileys, Aliases: []string{"sweat_smile"}},
	{Glyph: "🙂", Description: "Slightly Smiling Face", Category: CategorySmileys, Aliases: []string{"slightly_smiling_face"}},
	{Glyph: "🙃", Description: "Upside-Down Face", Category: CategorySmileys, Aliases: []string{"upside_down_face"}},
	{Glyph: "😉", Description: "Winking Face", Category: CategorySmileys, Aliases: []string{"wink"}},
	{Glyph: "😊", Description: "Smiling Face with Smiling Eyes", Category: CategorySmileys, Aliases: []string{"blush"}},
	{Glyph: "😇", Description: "Smiling Face with Halo", Category: CategorySmileys, Aliases: []string{"angel"}},
	{Glyph: "🧠", Description: "Brain", Category: CategorySmileys, Aliases: []string{"brain"}},
	{Glyph: "🐒", Description: "Monkey", Category: CategorySmileys, Aliases: []string{"monkey"}},
	{Glyph: "🙈", Description: "See No Evil", Category: CategorySmileys, Aliases: []string{"see_no_evil"}},
	{Glyph: "🙉", Description: "Hear No Evil", Category: CategorySmileys, Aliases: []string{"hear_no_evil"}},
	{Glyph: "🙊", Description: "Speak No Evil", Category: CategorySmileys, Aliases: []string{"speak_no_evil"}},
	{Glyph: "👋", Description: "Waving Hand", Category: CategoryPeople, Aliases: []string{"wave"}},
	{Glyph: "🤚", Description: "Raised Back of Hand", Category: CategoryPeople, Aliases: []string{"raised_back_of_hand"}},
	{Glyph: "✋", Description: "Raised Hand", Category: CategoryPeople, Aliases: []string{"raised_hand"}},
	{Glyph: "👌", Description: "OK Hand", Category: CategoryPeople, Aliases: []string{"ok_hand"}},
	{Glyph: "👍", Description: "Thumbs Up", Category: CategoryPeople, Aliases: []string{"thumbsup", "+1"}},
	{Glyph: "👎", Description: "Thumbs Down", Category: CategoryPeople, Aliases: []string{"thumbsdown", "-1"}},
	{Glyph: "🐶", Description: "Dog Face", Category: CategoryAnimals, Aliases: []string{"dog", "benji"}},
	{Glyph: "🐱", Description: "Cat Face", Category: CategoryAnimals, Aliases: []string{"cat"}},
	{Glyph: "🐭", Description: "Mouse Face", Category: CategoryAnimals, Aliases: []string{"mouse"}},
	{Glyph: "🐹", Description: "Hamster Face", Category: CategoryAnimals, Aliases: []string{"hamster"}},
	{Glyph: "🐰", Description: "Rabbit Face", Category: CategoryAnimals, Aliases: []string{"rabbit"}},
	{Glyph: "🐾", Description: "Paws", Category: CategoryAnimals, Aliases: []string{"paws"}},
	{Glyph: "🍎", Description: "Red Apple", Category: CategoryFood, Aliases: []string{"apple"}},
	{Glyph: "🍐", Description: "Pear", Category: CategoryFood, Aliases: []string{"pear"}},
	{Glyph: "🍊", Description: "Tangerine", Category: CategoryFood, Aliases: []string{"tangerine", "orange"}},
	{Glyph: "🍋", Description: "Lemon", Category: CategoryFood, Aliases: []string{"lemon"}},
	{Glyph: "🍌", Description: "Banana", Category: CategoryFood, Aliases: []string{"banana"}},
	{Glyph: "☕", Description: "Coffee", Category: CategoryFood, Aliases: []string{"coffee"}},
	{Glyph: "🍵", Description: "Tea", Category: CategoryFood, Aliases: []string{"tea"}},
	{Glyph: "🫐", Description: "Coffee Bean", Category: CategoryFood, Aliases: []string{"coffee_bean"}},
	{Glyph: "🚗", Description: "Automobile", Category: CategoryTravel, Aliases: []string{"car", "red_car"}},
	{Glyph: "🚕", Description: "Taxi", Category: CategoryTravel, Aliases: []string{"taxi"}},
	{Glyph: "🚙", Description: "Sport Utility Vehicle", Category: CategoryTravel, Aliases: []string{"blue_car"}},
	{Glyph: "🚌", Description: "Bus", Category: CategoryTravel, Aliases: []string{"bus"}},
	{Glyph: "✈️", Description: "Airplane", Category: CategoryTravel, Aliases: []string{"airplane"}},
	{Glyph: "⚽", Description: "Soccer Ball", Category: CategoryActivities, Aliases: []string{"soccer"}},
	{Glyph: "🏀", Description: "Basketball", Category: CategoryActivities, Aliases: []string{"basketball"}},
	{Glyph: "🏈", Description: "American Football", Category: CategoryActivities, Aliases: []string{"football"}},
	{Glyph: "⚾", Description: "Baseball", Category: CategoryActivities, Aliases: []string{"baseball"}},
	{Glyph: "🎾", Description: "Tennis", Category: CategoryActivities, Aliases: []string{"tennis"}},
	{Glyph: "💡", Description: "Light Bulb", Category: CategoryObjects, Aliases: []string{"bulb"}},
	{Glyph: "📱", Description: "Mobile Phone", Category: CategoryObjects, Aliases: []string{"iphone"}},
	{Glyph: "💻", Description: "Laptop Computer", Category: CategoryObjects, Aliases: []string{"computer"}},
	{Glyph: "⌚", Description: "Watch", Category: CategoryObjects, Aliases: []string{"watch"}},
	{Glyph: "📷", Description: "Camera", Category: CategoryObjects, Aliases: []string{"camera"}},
	{Glyph: "❤️", Description: "Red Heart", Category: CategorySymbols, Aliases: []string{"heart"}},
	{Glyph: "💔", Description: "Broken Heart", Category: CategorySymbols, Aliases: []string{"broken_heart"}},
	{Glyph: "💯", Description: "Hundred Points", Category: CategorySymbols, Aliases: []string{"100"}},
	{Glyph: "✅", Description: "Check Mark Button", Category: CategorySymbols, Aliases: []string{"white_check_mark"}},
	{Glyph: "❌", Description: "Cross Mark", Category: CategorySymbols, Aliases: []string{"x"}},
	{Glyph: "🏁", Description: "Chequered Flag", Category: CategoryFlags, Aliases: []string{"checkered_flag"}},
	{Glyph: "🚩", Description: "Triangular Flag", Category: CategoryFlags, Aliases: []string{"triangular_flag_on_post"}},
	{Glyph: "🎌", Description: "Crossed Flags", Category: CategoryFlags, Aliases: []string{"crossed_flags"}},
	{Glyph: "🏴", Description: "Black Flag", Category: CategoryFlags, Aliases: []string{"black_flag"}},
	{Glyph: "🏳️", Description: "White Flag", Category: CategoryFlags, Aliases: []string{"white_flag"}},
})

// Builtin returns the dataset compiled into the binary.
func Builtin() *Dataset {
	return builtin
}

func mustDataset(records []Record) *Dataset {
	d, err := NewDataset(records)
	if err != nil {
		panic(err)
	}
	return d
}
