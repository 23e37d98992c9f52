package usecase

// ExampleDocument is printed by --example and plotted by --demo.
const ExampleDocument = `# Please format the config file in line with the following example - YAML syntax.
# Colours can be CSS names or hex codes; hex codes must be enclosed in quotes.
# Mandatory keys: "Skills By Date", "Date", "Skills".

Chart Title: DEMO Python Skill Progression
Chart Size  :
  Width   : 4
  Height  : 4
Skills By Date:
  - Date    : 2019-04-08
    Colour  : blue
    Skills  :
      Skill 1 : 2
      Skill 2 : 5

  - Date    : 2019-04-12
    Skills  :
      Skill 1 : 3
      Skill 2 : 5.3
      Skill 5 : 4
`
