package modalflag
