package knowledge

import "github.com/dshills/stemtutor/pkg/types"

// Entry is one curated knowledge-base topic. Entries are immutable after
// catalog construction; (Subject, TopicID) is the unique key.
type Entry struct {
	Subject  types.Subject
	TopicID  string
	Keywords []string
	Content  string
}

// EmbedText returns the text that is embedded for this entry: topic id,
// keywords, and content together, so both terminology and prose contribute
// to the match.
func (e Entry) EmbedText() string {
	text := e.TopicID
	for _, k := range e.Keywords {
		text += " " + k
	}
	return text + " " + e.Content
}

// DefaultCatalog returns the built-in high school STEM catalog in its
// canonical order. The order is the deterministic tie-break for equal
// similarity scores.
func DefaultCatalog() []Entry {
	return []Entry{
		{
			Subject:  types.SubjectPhysics,
			TopicID:  "motion",
			Keywords: []string{"motion", "movement", "moving", "what is motion"},
			Content: `Motion is the change in position of an object over time relative to a reference point.

Key quantities:
- Displacement: change in position (a vector, has direction)
- Velocity: rate of change of position with direction (v = dx/dt)
- Speed: how fast an object moves (a scalar, no direction)
- Acceleration: rate of change of velocity (a = dv/dt)

Types of motion: linear (straight line), rotational (spinning around an axis), oscillatory (back and forth, like a pendulum), and circular.

Motion is relative: it must be measured against a reference frame. You are stationary relative to your chair but moving at about 1,670 km/h relative to Earth's center as it rotates.`,
		},
		{
			Subject:  types.SubjectPhysics,
			TopicID:  "kinetic_energy",
			Keywords: []string{"kinetic energy", "ke", "energy of motion"},
			Content: `Kinetic energy (KE) is the energy an object possesses due to its motion.

Formula: KE = (1/2)mv^2, where m is mass in kg and v is velocity in m/s. Measured in joules (J).

KE grows with the square of velocity: doubling the speed quadruples the energy. Every moving object has kinetic energy.

Example: a 1,000 kg car at 20 m/s has KE = (1/2)(1000)(400) = 200,000 J = 200 kJ.

The quadratic relationship is why high-speed crashes are so dangerous: a car at 100 km/h carries four times the kinetic energy of the same car at 50 km/h.`,
		},
		{
			Subject:  types.SubjectPhysics,
			TopicID:  "newtons_first_law",
			Keywords: []string{"first law", "newton first", "law of inertia", "inertia"},
			Content: `Newton's first law (the law of inertia): an object at rest stays at rest, and an object in motion stays in motion with constant velocity, unless acted upon by an unbalanced force.

Inertia is the tendency of objects to resist changes in motion. Mass is a measure of inertia: more massive objects have more of it.

Examples: a book on a table will not move unless pushed; a hockey puck on ice keeps sliding; when a car brakes suddenly, passengers lurch forward because their bodies keep moving.

Common misconception: objects do not naturally slow down. They slow down because of friction and air resistance. In space, with no friction, an object keeps moving forever.`,
		},
		{
			Subject:  types.SubjectPhysics,
			TopicID:  "newtons_second_law",
			Keywords: []string{"second law", "newton second", "f=ma", "force equals"},
			Content: `Newton's second law: F = ma (force equals mass times acceleration).

- F: net force in newtons (N)
- m: mass in kilograms (kg)
- a: acceleration in m/s^2

Force and acceleration are directly proportional; mass and acceleration are inversely proportional. Both force and acceleration are vectors, so direction matters.

Example: push a 10 kg box with 50 N of force. a = F/m = 50/10 = 5 m/s^2.

Application: sports cars accelerate quickly through either high force (powerful engine) or low mass (lightweight materials).`,
		},
		{
			Subject:  types.SubjectPhysics,
			TopicID:  "newtons_third_law",
			Keywords: []string{"third law", "newton third", "3rd law", "action reaction", "equal and opposite"},
			Content: `Newton's third law: for every action there is an equal and opposite reaction. When object A exerts a force on object B, object B simultaneously exerts a force equal in magnitude and opposite in direction on object A.

Forces always come in action-reaction pairs that act on different objects, are equal in magnitude, opposite in direction, and occur at the same time.

Examples: a rocket pushes exhaust gas down, the gas pushes the rocket up; walking pushes Earth backward while Earth pushes you forward; a swimmer pushes water back and the water pushes the swimmer forward.

Common misconception: action-reaction forces do not cancel, because they act on different objects.

Formula: F12 = -F21.`,
		},
		{
			Subject:  types.SubjectPhysics,
			TopicID:  "gravity",
			Keywords: []string{"gravity", "gravitational", "weight", "g"},
			Content: `Gravity is the attractive force between objects with mass.

On Earth's surface g = 9.8 m/s^2, and weight = mg (weight is a force, measured in newtons).

Mass vs weight: mass is the amount of matter (kg) and does not change; weight is the gravitational force (N) and changes with location. A 60 kg person weighs 588 N on Earth but only 96 N on the Moon (g = 1.6 m/s^2), while their mass stays 60 kg.

Newton's law of universal gravitation: F = G(m1*m2)/r^2. Every object attracts every other object, but the force is only noticeable for very massive bodies.`,
		},
		{
			Subject:  types.SubjectChemistry,
			TopicID:  "atom",
			Keywords: []string{"atom", "atomic", "what is atom"},
			Content: `An atom is the smallest unit of matter that retains the properties of an element.

Structure: a nucleus containing protons (positive) and neutrons (neutral), surrounded by electrons (negative) in energy levels.

Subatomic particles: protons define the element (atomic number Z), neutrons affect atomic mass, electrons take part in bonding. Mass number A = protons + neutrons. Isotopes are atoms of the same element with different neutron counts.

Example, carbon-12: 6 protons, 6 neutrons, 6 electrons in the neutral atom.`,
		},
		{
			Subject:  types.SubjectChemistry,
			TopicID:  "covalent_bond",
			Keywords: []string{"covalent", "covalent bond", "sharing electrons"},
			Content: `A covalent bond forms when atoms share electrons to achieve stable electron configurations, usually filling the outer shell to eight electrons (the octet rule).

Bond types: single (one shared pair, H-H), double (two pairs, O=O), triple (three pairs, N#N).

Polarity: nonpolar bonds share electrons equally (H2, O2); polar bonds share unequally because of different electronegativities (H2O).

In water, oxygen is more electronegative than hydrogen, so the shared electrons spend more time near the oxygen, giving it a partial negative charge and making the molecule polar.`,
		},
		{
			Subject:  types.SubjectChemistry,
			TopicID:  "ionic_bond",
			Keywords: []string{"ionic", "ionic bond", "transfer electrons"},
			Content: `An ionic bond forms when electrons transfer from one atom to another, creating oppositely charged ions that attract.

Process: a metal loses electrons to become a positive cation, a nonmetal gains them to become a negative anion, and the opposite charges attract electrostatically.

Example, sodium chloride: Na loses one electron to become Na+, Cl gains it to become Cl-, and the ions bind into NaCl (table salt).

Properties of ionic compounds: high melting and boiling points, electrical conductivity when dissolved in water, crystalline structure, hard but brittle. Rule of thumb: metal + nonmetal = ionic bond.`,
		},
		{
			Subject:  types.SubjectChemistry,
			TopicID:  "ph_scale",
			Keywords: []string{"ph", "ph scale", "acidity", "acidic", "basic"},
			Content: `The pH scale measures the acidity or basicity of a solution from 0 to 14.

- pH < 7: acidic (more H+ ions)
- pH = 7: neutral (pure water)
- pH > 7: basic or alkaline (more OH- ions)

Formula: pH = -log[H+]. Each pH unit is a tenfold difference in H+ concentration, so pH 4 is 10 times more acidic than pH 5 and pH 3 is 100 times more acidic.

Examples: stomach acid pH 1-2, lemon juice pH 3, pure water and blood pH 7, baking soda solution pH 8-9, drain cleaner pH 13-14.

Indicators: litmus paper turns red in acid and blue in base; phenolphthalein is colorless in acid and pink in base.`,
		},
		{
			Subject:  types.SubjectBiology,
			TopicID:  "photosynthesis",
			Keywords: []string{"photosynthesis", "photosynthesize"},
			Content: `Photosynthesis is the process plants use to convert light energy into chemical energy stored in glucose.

Overall equation: 6CO2 + 6H2O + light energy -> C6H12O6 + 6O2. It occurs in chloroplasts, which contain chlorophyll.

Two stages: the light-dependent reactions (in the thylakoids) capture light, split water to release oxygen, and produce ATP and NADPH; the Calvin cycle (in the stroma) uses that ATP and NADPH to fix CO2 into glucose and does not need direct light.

Photosynthesis produces the oxygen we breathe, forms the base of most food chains, and stores solar energy in chemical bonds. Its rate depends on light intensity, CO2 concentration, temperature, and water.`,
		},
		{
			Subject:  types.SubjectBiology,
			TopicID:  "cellular_respiration",
			Keywords: []string{"cellular respiration", "respiration cell"},
			Content: `Cellular respiration is the process cells use to break down glucose and produce ATP.

Overall equation: C6H12O6 + 6O2 -> 6CO2 + 6H2O + ATP. It is the reverse of photosynthesis.

Three stages: glycolysis in the cytoplasm splits glucose into two pyruvate (2 ATP net, no oxygen needed); the Krebs cycle in the mitochondrial matrix processes pyruvate into CO2, NADH, and FADH2; the electron transport chain on the inner mitochondrial membrane uses NADH and FADH2 to make most of the ATP (about 34) and requires oxygen.

Total yield is roughly 38 ATP per glucose. Without oxygen, cells fall back to fermentation, which is far less efficient.`,
		},
		{
			Subject:  types.SubjectBiology,
			TopicID:  "dna",
			Keywords: []string{"dna", "deoxyribonucleic"},
			Content: `DNA (deoxyribonucleic acid) is the molecule that carries genetic information in all living organisms.

Structure: a double helix of two twisted strands (Watson and Crick, 1953) with a sugar-phosphate backbone outside and paired nitrogenous bases inside.

Bases: adenine (A) and guanine (G) are purines; thymine (T) and cytosine (C) are pyrimidines. A pairs with T via two hydrogen bonds, G with C via three (Chargaff's rules).

DNA stores genetic information, passes it from parents to offspring, and carries the instructions for building proteins. Compared with RNA, DNA is double-stranded, uses thymine instead of uracil, and has deoxyribose sugar. Organization: DNA -> genes -> chromosomes -> nucleus.`,
		},
		{
			Subject:  types.SubjectBiology,
			TopicID:  "mitosis",
			Keywords: []string{"mitosis", "cell division", "mitotic"},
			Content: `Mitosis is cell division that produces two genetically identical daughter cells, used for growth, repair, and asexual reproduction.

Phases (PMAT):
1. Prophase: chromatin condenses into chromosomes, the nuclear envelope breaks down, spindle fibers form.
2. Metaphase: chromosomes line up at the cell equator and spindle fibers attach at the centromeres.
3. Anaphase: sister chromatids separate and move to opposite poles.
4. Telophase: nuclear envelopes reform, chromosomes decondense, and cytokinesis splits the cell.

Result: two diploid daughter cells identical to the parent. Contrast with meiosis, which uses two divisions to make four genetically different gametes.`,
		},
		{
			Subject:  types.SubjectMath,
			TopicID:  "quadratic_equation",
			Keywords: []string{"quadratic", "quadratic equation", "ax^2"},
			Content: `A quadratic equation is a polynomial equation of degree 2, with standard form ax^2 + bx + c = 0 where a != 0.

Quadratic formula: x = (-b +/- sqrt(b^2 - 4ac)) / 2a.

The discriminant b^2 - 4ac tells you the solutions: positive means two real roots, zero means one repeated real root, negative means no real roots (two complex ones).

Example: x^2 - 5x + 6 = 0 gives x = (5 +/- 1)/2, so x = 3 or x = 2. The same equation factors as (x-3)(x-2) = 0.

Other methods: factoring, completing the square, graphing. The graph is a parabola that opens up when a > 0 and down when a < 0.`,
		},
		{
			Subject:  types.SubjectMath,
			TopicID:  "pythagorean_theorem",
			Keywords: []string{"pythagorean", "pythagoras", "a^2 + b^2"},
			Content: `The Pythagorean theorem relates the sides of a right triangle: a^2 + b^2 = c^2, where a and b are the legs and c is the hypotenuse (the longest side, opposite the right angle).

Example: legs 3 and 4 give 9 + 16 = 25, so the hypotenuse is 5.

Common Pythagorean triples: 3-4-5, 5-12-13, 8-15-17, 7-24-25.

The converse also holds: if a^2 + b^2 = c^2, the triangle is a right triangle. Applications include distance calculations, navigation, construction, and computer graphics.`,
		},
	}
}

// lawTopics maps a detected law number to its physics topic id.
var lawTopics = map[int]string{
	1: "newtons_first_law",
	2: "newtons_second_law",
	3: "newtons_third_law",
}
