package deck

// Quotes feeds the ticker shown above every content slide. Order is the
// rotation order; the starting index is randomized by the caller.
var Quotes = []string{
	"Innovation distinguishes between a leader and a follower.",
	"The best way to predict the future is to invent it.",
	"Technology is best when it brings people together.",
	"Talk is cheap. Show me the code.",
	"Programs must be written for people to read, and only incidentally for machines to execute.",
	"Any fool can write code that a computer can understand. Good programmers write code that humans can understand.",
	"Truth can only be found in one place: the code.",
	"Simplicity is the ultimate sophistication.",
	"Java is to JavaScript what car is to Carpet.",
	"Code never lies, comments sometimes do.",
	"Computers are fast; developers keep them slow.",
	"Every great developer you know got there by solving problems they were unqualified to solve until they actually did it.",
	"If debugging is the process of removing software bugs, then programming must be the process of putting them in.",
	"Measuring programming progress by lines of code is like measuring aircraft building progress by weight.",
	"The function of good software is to make the complex appear to be simple.",
	"Perfection is achieved not when there is nothing more to add, but rather when there is nothing more to take away.",
	"Before software can be reusable it first has to be usable.",
	"Optimism is an occupational hazard of programming: feedback is the treatment.",
	"It's not that we use technology, we live technology.",
	"The advance of technology is based on making it fit in so that you don't really even notice it.",
	"Any sufficiently advanced technology is indistinguishable from magic.",
	"The science of today is the technology of tomorrow.",
	"Technology is a useful servant but a dangerous master.",
	"We are changing the world with technology.",
	"The future is still so much bigger than the past.",
	"Innovation is the ability to see change as an opportunity - not a threat.",
	"Innovation comes from creating environments where ideas can connect.",
	"There's a way to do it better - find it.",
	"Learning and innovation go hand in hand.",
	"Creativity is thinking up new things. Innovation is doing new things.",
	"The only way to discover the limits of the possible is to go beyond them into the impossible.",
	"Logic will get you from A to B. Imagination will take you everywhere.",
	"Do not go where the path may lead, go instead where there is no path and leave a trail.",
	"Everything you can imagine is real.",
	"Stay hungry, stay foolish.",
	"Your work is going to fill a large part of your life, and the only way to be truly satisfied is to do great work.",
	"Quality means doing it right when no one is looking.",
	"Management is doing things right; leadership is doing the right things.",
	"Productivity is being able to do things that you were never able to do before.",
	"Don't watch the clock; do what it does. Keep going.",
	"Success is walking from failure to failure with no loss of enthusiasm.",
	"The secret of getting ahead is getting started.",
	"What we think, we become.",
	"Opportunities don't happen, you create them.",
	"It always seems impossible until it's done.",
	"The greatest glory in living lies not in never falling, but in rising every time we fall.",
	"Software is eating the world.",
	"Get busy living or get busy dying.",
	"The purpose of our lives is to be happy.",
	"Deleted code is debugged code.",
	"Software undergoes beta testing shortly before it's released. Beta is Latin for 'still doesn't work'.",
}
