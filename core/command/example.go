// core/command/example.go
package command

// Example is a commented command file covering the whole selection language.
const Example = `# Anything after a "#" is a comment; comments end at the end of the line.
# A statement may span several lines and always ends with ";".

# Residues 1-100 of every chain: raise Ala, Gly, Tyr and Cys by 100 and
# lower Trp and Phe by 20.5.
select idx 1-100 res AGYC:100.,WF:-20.5;

# Comma separated indices and ranges: residues 1-50, 134 and 55-100.
select idx 1-50,134,55-100 res H:2;

# Prefix an index with a chain letter to restrict it to that chain.
select idx A5-10,B10-20 res Y:4;

# A leading "!" selects everything except the listed residues
# (of the chains named in the selection).
select idx !A1-20 res P:-5;

# Select by residue type, with 3 or 1 letter codes.
select name GLY,A res A:10;

# Every residue that is not a cysteine.
select name !CYS res C:220.5;

# Combine clauses with "&"/"and" or "|"/"or"; they are applied left to right.
select idx A1-50 and name GLY,SER | idx B1-5 res QEK:2;

# Later statements only overwrite biases they set to a non-zero value.
select idx 25-29,52-59,83-87 res AQERKGSTDP:2.;
`
