package ingredient

import "strings"

// ingredientSynonyms maps a canonical ingredient name (lowercase) to alternate
// phrasings: regional names, brand names, and plural/singular variants the
// normalizer's suffix rules do not catch. Curated, not generated.
var ingredientSynonyms = map[string][]string{
	// Sweeteners & syrups
	"agave syrup":    {"agave nectar", "agave", "blue agave"},
	"corn syrup":     {"glucose syrup", "maize syrup"},
	"honey":          {"raw honey", "pure honey", "honeycomb"},
	"maple syrup":    {"pure maple syrup", "maple", "real maple syrup"},
	"molasses":       {"treacle", "black treacle", "blackstrap molasses"},
	"simple syrup":   {"sugar syrup", "bar syrup"},
	"sugar, white":   {"white sugar", "granulated sugar", "caster sugar", "table sugar", "regular sugar"},
	"sugar, brown":   {"brown sugar", "light brown sugar", "dark brown sugar", "muscovado"},
	"powdered sugar": {"icing sugar", "confectioners sugar", "confectioner sugar", "10x sugar"},

	// Flours & starches
	"all-purpose flour": {"plain flour", "ap flour", "white flour", "all purpose flour", "regular flour"},
	"almond flour":      {"almond meal", "ground almonds"},
	"bread flour":       {"strong flour", "high gluten flour"},
	"chickpea flour":    {"gram flour", "besan", "garbanzo flour", "chana flour"},
	"corn starch":       {"cornstarch", "corn flour", "maize starch", "maizena"},
	"whole wheat flour": {"wholemeal flour", "graham flour", "whole grain flour"},
	"tapioca flour":     {"tapioca starch", "cassava flour"},

	// Grains & rice
	"arborio rice":    {"risotto rice", "italian rice"},
	"basmati rice":    {"basmati", "indian rice"},
	"jasmine rice":    {"thai rice", "fragrant rice"},
	"white rice":      {"long grain rice", "regular rice"},
	"barley":          {"pearl barley", "hulled barley"},
	"bulgur":          {"bulghur", "cracked wheat", "burgul"},
	"couscous":        {"cous cous", "moroccan pasta"},
	"oats / oatmeal":  {"oats", "oatmeal", "rolled oats", "old fashioned oats", "porridge oats", "quick oats"},
	"quinoa":          {"keen-wa", "quinua"},
	"cornmeal":        {"corn meal", "maize meal", "polenta"},
	"oat bran":        {"oat fiber"},
	"wheat bran":      {"bran", "millers bran"},

	// Pasta & noodles
	"egg noodles":     {"egg pasta", "german noodles"},
	"fettuccine":      {"fettuccini", "tagliatelle"},
	"fusilli":         {"rotini", "spiral pasta", "corkscrew pasta"},
	"lasagna noodles": {"lasagna sheets", "lasagne", "lasagna"},
	"linguine":        {"linguini", "flat spaghetti"},
	"macaroni":        {"elbow macaroni", "elbow pasta", "mac"},
	"penne":           {"penne rigate", "mostaccioli", "tube pasta"},
	"ramen noodles":   {"ramen", "instant noodles", "cup noodles"},
	"rice noodles":    {"rice sticks", "pad thai noodles", "vermicelli", "pho noodles"},
	"soba noodles":    {"soba", "buckwheat noodles", "japanese noodles"},
	"spaghetti":       {"pasta", "long pasta"},
	"udon noodles":    {"udon", "thick japanese noodles"},

	// Bread & baked
	"bread":                  {"loaf", "sliced bread", "sandwich bread"},
	"breadcrumbs":            {"bread crumbs", "dried breadcrumbs"},
	"panko":                  {"japanese breadcrumbs", "panko breadcrumbs"},
	"french bread (baguette)": {"baguette", "french bread", "french loaf", "french stick"},
	"naan bread":             {"naan", "nan bread", "indian bread"},
	"pita bread":             {"pita", "pitta bread", "pocket bread"},
	"pie crust":              {"pie shell", "pastry crust", "pie dough"},
	"puff pastry":            {"puff pastry sheets", "flaky pastry"},
	"phyllo dough":           {"filo dough", "filo pastry", "phyllo", "filo"},
	"corn tortillas":         {"corn tortilla", "maize tortillas"},
	"flour tortillas":        {"flour tortilla", "soft tortillas", "wheat tortillas"},
	"tortilla chips":         {"corn chips", "nachos", "nacho chips"},

	// Vegetables
	"arugula":             {"rocket", "rocket salad", "rucola", "roquette"},
	"avocados":            {"avocado", "avo"},
	"bean sprouts":        {"mung bean sprouts", "beansprouts", "sprouts"},
	"beets":               {"beetroot", "beet", "red beet"},
	"bell peppers, green": {"green bell pepper", "green pepper", "green capsicum"},
	"bell peppers, red":   {"red bell pepper", "red pepper", "red capsicum"},
	"bok choy":            {"pak choi", "pak choy", "chinese cabbage", "bok choi"},
	"broccoli":            {"broccoli florets", "broccoli crowns"},
	"brussels sprouts":    {"brussel sprouts", "brussels", "mini cabbages"},
	"carrots":             {"carrot", "orange carrot"},
	"cauliflower":         {"cauliflower florets", "cauli"},
	"celery":              {"celery stalks", "celery sticks", "celery ribs"},
	"corn":                {"sweetcorn", "sweet corn", "maize", "corn on the cob", "corn kernels"},
	"cucumbers":           {"cucumber", "cuke", "cukes"},
	"eggplant":            {"aubergine", "brinjal", "eggplants"},
	"green beans":         {"string beans", "snap beans", "french beans", "haricots verts"},
	"green peas":          {"peas", "garden peas", "english peas", "sweet peas"},
	"kale":                {"curly kale", "tuscan kale", "lacinato kale", "dinosaur kale"},
	"leeks":               {"leek", "baby leeks"},
	"mushrooms, white":    {"white mushrooms", "button mushrooms", "champignon"},
	"mushrooms, shiitake": {"shiitake mushrooms", "shiitake", "chinese mushrooms"},
	"onions":              {"onion", "yellow onion", "white onion", "brown onion", "cooking onion"},
	"potatoes":            {"potato", "spud", "spuds", "russet potato", "baking potato"},
	"scallions":           {"green onions", "green onion", "spring onions", "spring onion", "salad onions"},
	"shallots":            {"shallot", "eschalot", "french shallot"},
	"spinach":             {"baby spinach", "fresh spinach", "spinach leaves"},
	"squash, butternut":   {"butternut squash", "butternut", "butternut pumpkin"},
	"sweet potatoes":      {"sweet potato", "yam", "yams", "kumara"},
	"tomatoes":            {"tomato", "fresh tomatoes", "vine tomatoes", "beefsteak tomato"},
	"zucchini":            {"courgette", "courgettes", "zucchinis", "baby marrow"},
	"romaine lettuce":     {"romaine", "cos lettuce", "cos"},
	"iceberg lettuce":     {"iceberg", "crisphead lettuce", "head lettuce"},

	// Herbs
	"basil":    {"fresh basil", "sweet basil", "thai basil"},
	"bay leaf": {"bay leaves", "laurel leaf", "bay laurel"},
	"chives":   {"fresh chives", "garlic chives"},
	"cilantro": {"coriander", "fresh coriander", "coriander leaves", "chinese parsley", "dhania"},
	"dill":     {"fresh dill", "dill weed"},
	"mint":     {"fresh mint", "spearmint", "garden mint"},
	"oregano":  {"wild marjoram", "greek oregano"},
	"parsley":  {"fresh parsley", "flat leaf parsley", "italian parsley", "curly parsley"},
	"rosemary": {"fresh rosemary"},
	"thyme":    {"fresh thyme", "garden thyme"},

	// Spices & seasonings
	"black pepper":      {"pepper", "ground pepper", "peppercorns", "cracked pepper"},
	"cayenne, ground":   {"cayenne pepper", "cayenne", "ground red pepper"},
	"chili powder":      {"chilli powder", "chile powder"},
	"cinnamon":          {"ground cinnamon", "cinnamon sticks", "cassia"},
	"cumin":             {"ground cumin", "cumin seeds", "jeera", "comino"},
	"curry powder":      {"curry spice", "madras curry powder"},
	"garam masala":      {"garam masalla", "indian spice blend"},
	"garlic powder":     {"garlic granules", "dried garlic"},
	"nutmeg":            {"ground nutmeg", "whole nutmeg"},
	"paprika":           {"sweet paprika", "hungarian paprika", "smoked paprika", "pimenton"},
	"red pepper flakes": {"crushed red pepper", "chili flakes", "pepper flakes", "red chili flakes"},
	"saffron":           {"saffron threads", "kesar", "azafran"},
	"turmeric":          {"turmeric powder", "ground turmeric", "haldi", "curcuma"},
	"salt":              {"sea salt", "kosher salt", "table salt", "fine salt", "coarse salt"},

	// Fruits
	"bananas":      {"banana", "ripe banana"},
	"blueberries":  {"blueberry", "wild blueberries"},
	"green apples": {"granny smith", "granny smith apples", "green apple", "sour apple"},
	"lemons":       {"lemon", "fresh lemon"},
	"limes":        {"lime", "fresh lime", "persian lime", "key lime"},
	"mangoes":      {"mango", "fresh mango"},
	"orange":       {"oranges", "navel orange", "fresh orange"},
	"peaches":      {"peach", "fresh peaches"},
	"raspberries":  {"raspberry"},
	"strawberries": {"strawberry", "fresh strawberries"},
	"raisins":      {"raisin", "dried grapes"},
	"dates":        {"date", "medjool dates", "pitted dates"},

	// Dairy & eggs
	"butter":        {"unsalted butter", "salted butter", "sweet cream butter"},
	"buttermilk":    {"cultured buttermilk", "butter milk"},
	"cream":         {"heavy cream", "heavy whipping cream", "whipping cream", "double cream"},
	"cream cheese":  {"philadelphia", "philly", "neufchatel"},
	"eggs":          {"egg", "chicken eggs", "large eggs", "whole eggs"},
	"ghee":          {"clarified butter", "drawn butter"},
	"half and half": {"half & half", "half-and-half", "half n half"},
	"milk":          {"whole milk", "skim milk", "lowfat milk", "2% milk", "dairy milk"},
	"sour cream":    {"soured cream", "cultured cream"},
	"yogurt":        {"yoghurt", "plain yogurt", "greek yogurt"},

	// Cheeses
	"blue cheese":      {"bleu cheese", "gorgonzola", "roquefort", "stilton"},
	"cheddar, sharp":   {"sharp cheddar", "sharp cheddar cheese", "aged cheddar", "mature cheddar"},
	"feta":             {"feta cheese", "greek feta"},
	"fresh mozzarella": {"mozzarella di bufala", "buffalo mozzarella", "burrata"},
	"goat cheese":      {"chevre", "chèvre", "goat"},
	"gruyere":          {"gruyère", "gruyere cheese", "swiss gruyere"},
	"monterey jack":    {"jack cheese", "pepper jack"},
	"mozzarella":       {"mozzarella cheese", "pizza cheese", "low moisture mozzarella"},
	"parmesan":         {"parmigiano", "parmigiano reggiano", "parmesan cheese", "parm"},
	"ricotta":          {"ricotta cheese"},
	"swiss cheese":     {"swiss", "emmental", "emmentaler", "baby swiss"},

	// Plant-based milks
	"almond milk":  {"almond beverage", "unsweetened almond milk"},
	"coconut milk": {"canned coconut milk", "full fat coconut milk"},
	"oat milk":     {"oat beverage", "oatly"},
	"soy milk":     {"soya milk", "soymilk"},

	// Beans & legumes
	"black beans":      {"black turtle beans", "frijoles negros"},
	"cannellini beans": {"white kidney beans", "cannellini"},
	"chickpeas":        {"garbanzo beans", "garbanzos", "chick peas", "ceci beans"},
	"fava beans":       {"broad beans", "faba beans"},
	"kidney beans":     {"red kidney beans", "rajma"},
	"lima beans":       {"butter beans", "lima"},
	"pinto beans":      {"pinto", "frijoles"},
	"red lentils":      {"red lentil", "masoor dal", "split red lentils"},
	"green lentils":    {"french lentils", "puy lentils"},

	// Nuts & seeds
	"almonds":         {"almond", "whole almonds", "raw almonds", "sliced almonds", "slivered almonds"},
	"cashews":         {"cashew nuts", "cashew"},
	"hazelnuts":       {"filberts", "hazelnut", "cobnuts"},
	"peanuts":         {"groundnuts", "ground nuts", "peanut"},
	"pecans":          {"pecan nuts", "pecan"},
	"pine nuts":       {"pignoli", "pinon nuts", "pine kernels"},
	"walnuts":         {"walnut", "english walnuts"},
	"chia seeds":      {"chia", "chia seed"},
	"flax seeds":      {"flaxseed", "linseed", "flax"},
	"sesame seeds":    {"sesame seed", "til", "benne seeds"},
	"sunflower seeds": {"sunflower seed", "sunflower kernels"},
	"peanut butter":   {"peanut spread", "pb", "natural peanut butter"},
	"tahini":          {"sesame paste", "sesame butter", "tehina"},

	// Meat
	"beef, ground":    {"ground beef", "minced beef", "beef mince", "hamburger meat", "hamburger"},
	"beef, steak":     {"steak", "beefsteak", "beef steak"},
	"beef, brisket":   {"brisket", "beef brisket"},
	"pork, ground":    {"ground pork", "minced pork", "pork mince"},
	"pork chops":      {"pork chop", "bone in pork chops", "center cut pork chops"},
	"pork shoulder":   {"pork butt", "boston butt", "pork shoulder roast"},
	"bacon":           {"streaky bacon", "american bacon", "bacon strips"},
	"ham":             {"sliced ham", "smoked ham", "deli ham", "baked ham"},
	"prosciutto":      {"parma ham", "italian ham", "prosciutto di parma"},
	"chicken":         {"whole chicken", "roasting chicken"},
	"chicken breast":  {"chicken breasts", "boneless chicken", "boneless skinless chicken breast", "chicken cutlets"},
	"chicken, thighs": {"chicken thighs", "chicken thigh", "bone in thighs", "boneless thighs"},
	"ground turkey":   {"minced turkey", "turkey mince", "lean ground turkey"},
	"lamb, ground":    {"ground lamb", "minced lamb", "lamb mince"},
	"chorizo":         {"spanish chorizo", "mexican chorizo"},
	"hot dogs":        {"frankfurters", "franks", "wieners", "hotdogs"},

	// Seafood
	"anchovies":        {"anchovy", "anchovy fillets"},
	"cod":              {"cod fish", "atlantic cod", "codfish"},
	"salmon":           {"atlantic salmon", "wild salmon", "salmon fillet", "sockeye salmon"},
	"smoked salmon":    {"lox", "nova", "nova lox", "gravlax"},
	"tuna":             {"ahi tuna", "yellowfin tuna", "tuna steak", "fresh tuna"},
	"canned tuna":      {"tuna fish", "tuna can", "chunk light tuna", "albacore tuna"},
	"shrimp":           {"prawns", "prawn", "jumbo shrimp", "tiger shrimp", "large shrimp"},
	"scallops":         {"scallop", "sea scallops", "bay scallops"},
	"mussels":          {"mussel", "black mussels", "green mussels"},
	"squid (calamari)": {"calamari", "squid", "fried calamari"},

	// Plant proteins
	"tofu":   {"bean curd", "soybean curd", "firm tofu", "silken tofu", "soft tofu"},
	"tempeh": {"fermented soy", "tempeh strips"},
	"seitan": {"wheat meat", "wheat gluten"},

	// Oils & vinegars
	"canola oil":       {"rapeseed oil"},
	"olive oil":        {"extra virgin olive oil", "evoo", "virgin olive oil"},
	"sesame oil":       {"toasted sesame oil", "dark sesame oil"},
	"vegetable oil":    {"cooking oil", "neutral oil"},
	"balsamic vinegar": {"balsamic", "aged balsamic"},
	"rice vinegar":     {"rice wine vinegar", "seasoned rice vinegar"},
	"vinegar, cider":   {"apple cider vinegar", "cider vinegar", "acv"},
	"white vinegar":    {"distilled vinegar", "distilled white vinegar"},

	// Sauces & condiments
	"barbecue sauce":     {"bbq sauce", "barbeque sauce"},
	"fish sauce":         {"nam pla", "nuoc mam", "patis"},
	"hoisin sauce":       {"hoisin", "chinese bbq sauce"},
	"hot sauce":          {"pepper sauce", "louisiana hot sauce", "franks hot sauce"},
	"ketchup":            {"catsup", "tomato ketchup", "katsup"},
	"marinara sauce":     {"marinara", "pasta sauce", "red sauce", "spaghetti sauce"},
	"mayonnaise":         {"mayo", "hellmanns", "best foods"},
	"pesto":              {"basil pesto", "pesto sauce"},
	"salsa":              {"fresh salsa", "pico de gallo", "salsa fresca", "tomato salsa"},
	"soy sauce / tamari": {"soy sauce", "tamari", "shoyu", "light soy sauce", "dark soy sauce"},
	"sriracha":           {"sriracha sauce", "rooster sauce", "hot chili sauce"},
	"teriyaki sauce":     {"teriyaki", "teriyaki glaze", "teriyaki marinade"},
	"tomato paste":       {"tomato concentrate", "double concentrated tomato"},
	"tomato sauce":       {"tomato puree", "passata"},
	"worcestershire sauce": {"worcestershire", "lea and perrins", "lea & perrins"},
	"dijon mustard":      {"dijon", "french mustard"},
	"yellow mustard":     {"american mustard", "ballpark mustard", "prepared mustard"},

	// Canned & jarred
	"canned tomatoes": {"diced tomatoes", "crushed tomatoes", "whole tomatoes", "tinned tomatoes"},
	"hummus":          {"houmous", "humous", "chickpea dip"},
	"olives, black":   {"black olives", "ripe olives"},
	"olives, kalamata": {"kalamata olives", "greek olives"},
	"capers":          {"caper berries", "caperberries"},
	"dill pickles":    {"dill pickle", "kosher dill", "pickled cucumber"},
	"kimchi":          {"kimchee", "korean pickled cabbage"},
	"miso":            {"miso paste", "white miso", "red miso", "shiro miso"},
	"curry paste":     {"thai curry paste", "red curry paste", "green curry paste"},

	// Broths & stocks
	"broth, beef":       {"beef broth", "beef stock", "beef bouillon"},
	"broth, chicken":    {"chicken broth", "chicken stock", "chicken bouillon"},
	"broth, vegetables": {"vegetable broth", "vegetable stock", "veggie broth"},

	// Baking
	"baking powder":   {"leavening"},
	"baking soda":     {"bicarbonate of soda", "bicarb", "sodium bicarbonate"},
	"chocolate":       {"baking chocolate", "unsweetened chocolate", "semisweet chocolate", "dark chocolate", "milk chocolate"},
	"cocoa powder":    {"cocoa", "unsweetened cocoa", "dutch process cocoa", "cacao powder"},
	"dry yeast":       {"active dry yeast", "instant yeast", "rapid rise yeast", "bread yeast"},
	"vanilla extract": {"vanilla", "pure vanilla extract", "vanilla essence"},
	"baking chips":    {"chocolate chips", "morsels", "baking morsels"},
	"cream of tartar": {"potassium bitartrate"},
	"gelatin":         {"gelatine", "unflavored gelatin"},

	// Misc
	"applesauce":  {"apple sauce", "apple puree"},
	"caramel":     {"caramel sauce", "caramel topping", "dulce de leche"},
	"jam":         {"preserves", "fruit jam"},
	"ice":         {"ice cubes", "crushed ice"},
	"lard":        {"pork fat", "rendered pork fat"},
	"masa harina": {"masa", "corn masa", "instant corn masa"},
	"popcorn":     {"popping corn", "popcorn kernels"},
	"shortening":  {"crisco", "vegetable shortening"},
	"wasabi":      {"japanese horseradish", "wasabi paste"},
	"granola":     {"granola cereal", "homemade granola"},
	"orange juice": {"oj", "fresh squeezed orange juice", "fresh orange juice"},
	"sparkling water": {"seltzer", "fizzy water", "carbonated water"},
	"red wine":    {"dry red wine", "red table wine"},
	"white wine":  {"dry white wine", "white table wine"},
}

// synonymToCanonical is the reverse index, built once at startup and read-only
// afterwards.
var synonymToCanonical = func() map[string]string {
	m := make(map[string]string)
	for canonical, synonyms := range ingredientSynonyms {
		for _, synonym := range synonyms {
			m[strings.ToLower(synonym)] = strings.ToLower(canonical)
		}
	}
	return m
}()

// CanonicalFor resolves an alternate phrasing to its canonical ingredient
// name. The second return is false when the phrase is not a known synonym.
func CanonicalFor(phrase string) (string, bool) {
	canonical, ok := synonymToCanonical[strings.ToLower(strings.TrimSpace(phrase))]
	return canonical, ok
}

// SynonymsFor returns the alternate phrasings registered for a canonical name,
// or nil when there are none.
func SynonymsFor(canonicalName string) []string {
	return ingredientSynonyms[strings.ToLower(canonicalName)]
}
