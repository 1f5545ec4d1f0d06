package cmd

const rootLongDescription = `Renamer applies batch rename operations to hierarchical scene documents:
sequential numbering, prefixes and suffixes, character trimming, literal
search and replace, and naming-convention tags.

Operations target the document's selection by default. The scope flag widens
them to whole hierarchies (each selected object plus its descendants, parents
first) or to every object in the scene.`

const numberLongDescription = `Rename each target to BASE plus a sequence number, zero-padded to the
padding width. Numbers follow target order, so a selection of n objects ends
up named BASE<start> through BASE<start+n-1>. The field widens when a number
outgrows the padding; it is never truncated.`

const prefixLongDescription = `Prepend TEXT to each target's name. With --separator underscore an "_" is
inserted between the text and the name; the default concatenates bare.`

const suffixLongDescription = `Append TEXT to each target's name. With --separator underscore an "_" is
inserted between the name and the text; the default concatenates bare.`

const trimLongDescription = `Remove one character from each target's name, from the given side. Names of
a single character are skipped with a warning and left unmodified; the rest
of the batch still runs.`

const replaceLongDescription = `Replace every occurrence of SEARCH in each target's name with REPLACE.
Matching is literal and case-sensitive, against the object's own display
name only, never its path. Omitting REPLACE deletes the occurrences. Names
without the search term pass through unchanged.`

const tagLongDescription = `Prefix each target's name with the token of a naming convention. The
built-in catalog maps Rig, Animation, Geometry and Controller to RIG_,
ANIM_, GEO_ and CTRL_; a tokens file can add more.`

const quickLongDescription = `Apply a one-click token from the quick tables as an underscore-separated
affix. Tokens from the prefix table attach before the name, tokens from the
suffix table after it.`

const treeLongDescription = `Print the scene hierarchy top-down, indented by depth, with an object
count.`

const sessionLongDescription = `Run an interactive renaming session. Operations applied during the session
share one history ledger that can be reviewed, copied and cleared; the scene
is written back once, when the session ends.`
