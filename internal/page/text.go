package page

var (
	Greeting = "WELCOME TO MY SPACE"
	Name     = "I'm Yushen"
	Tagline  = `Developer and digital craftsman. I build elegant solutions
with clean code and thoughtful design.`

	AboutKicker  = "ABOUT ME"
	AboutHeading = "Crafting Digital Experiences"
	AboutBio     = []string{
		`I transform complex problems into elegant, intuitive solutions.
With a passion for both aesthetics and functionality, I bridge
the gap between design and development.`,
		`Every project is an opportunity to create something meaningful:
software that not only works flawlessly but feels right to use.`,
	}
	Skills     = []string{"Go", "TypeScript", "Node.js", "UI/UX", "System Design"}
	SocialText = "github.com/PiyushKingg"
	Initial    = "Y"
)
